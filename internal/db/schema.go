package db

const schema = `
-- Runs table (one benchmark invocation)
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    repetitions INTEGER NOT NULL
);

-- Trials table (one embed + extract + format checks)
CREATE TABLE IF NOT EXISTS trials (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    seq INTEGER NOT NULL,

    cover TEXT NOT NULL,
    secret TEXT NOT NULL,
    method TEXT NOT NULL,

    embed_ns INTEGER NOT NULL,
    extract_ns INTEGER NOT NULL,
    cover_runes INTEGER NOT NULL,
    embedded_runes INTEGER NOT NULL,

    success_plain BOOLEAN NOT NULL,
    success_html BOOLEAN NOT NULL,
    success_pdf BOOLEAN NOT NULL,

    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
    UNIQUE(run_id, seq)
);

-- Aggregates table (per cover, secret and method)
CREATE TABLE IF NOT EXISTS aggregates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    seq INTEGER NOT NULL,

    cover TEXT NOT NULL,
    secret TEXT NOT NULL,
    method TEXT NOT NULL,
    trials INTEGER NOT NULL,

    embed_ms REAL NOT NULL,
    extract_ms REAL NOT NULL,
    embed_stddev_ms REAL NOT NULL,
    extract_stddev_ms REAL NOT NULL,

    success_plain REAL NOT NULL,
    success_html REAL NOT NULL,
    success_pdf REAL NOT NULL,

    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
    UNIQUE(run_id, cover, secret, method)
);

CREATE INDEX IF NOT EXISTS idx_trials_run ON trials(run_id);
CREATE INDEX IF NOT EXISTS idx_aggregates_run ON aggregates(run_id);
CREATE INDEX IF NOT EXISTS idx_aggregates_method ON aggregates(method);
`
