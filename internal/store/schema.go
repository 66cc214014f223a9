package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
    session_id           TEXT PRIMARY KEY,
    record               TEXT NOT NULL,
    saved_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
    id                   TEXT PRIMARY KEY,
    session_id           TEXT NOT NULL,
    role                 TEXT NOT NULL,
    content              TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    seq                  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, seq);
CREATE INDEX IF NOT EXISTS idx_profiles_saved ON profiles(saved_at);
`
