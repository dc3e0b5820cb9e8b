package db

// SchemaSQL contains the database schema initialization SQL.
// Timestamps are stored as the same ISO strings the in-memory store hands
// out, so the wire contract is identical across backends. The created field
// orders entries for listing.
const SchemaSQL = `
    -- ==========================================================================
    -- DIARY ENTRY TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS diary_entry SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS user_id ON diary_entry TYPE string;
    DEFINE FIELD IF NOT EXISTS summary ON diary_entry TYPE string;
    DEFINE FIELD IF NOT EXISTS timestamp ON diary_entry TYPE string;
    DEFINE FIELD IF NOT EXISTS created ON diary_entry TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS diary_entry_user ON diary_entry FIELDS user_id;

    -- ==========================================================================
    -- MOOD POINT TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS mood_point SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS user_id ON mood_point TYPE string;
    DEFINE FIELD IF NOT EXISTS date ON mood_point TYPE string;
    DEFINE FIELD IF NOT EXISTS score ON mood_point TYPE float;
    DEFINE FIELD IF NOT EXISTS created ON mood_point TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS mood_point_user ON mood_point FIELDS user_id;
`
