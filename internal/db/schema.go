package db

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    username      TEXT,
    age           INTEGER,
    weight        REAL,
    created_at    DATETIME DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    token_hash TEXT NOT NULL,
    expires_at DATETIME NOT NULL,
    created_at DATETIME DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user ON refresh_tokens(user_id);

CREATE TABLE IF NOT EXISTS user_preferences (
    user_id                 TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    timezone                TEXT DEFAULT '',
    caffeine_cutoff         TEXT DEFAULT '14:00',
    sleep_target            TEXT DEFAULT '',
    protein_target          TEXT DEFAULT '',
    hydration_target        TEXT DEFAULT '',
    selected_program_id     TEXT,
    selected_program_day_id TEXT,
    updated_at              DATETIME DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS schedule_blocks (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    start_time TEXT NOT NULL,
    end_time   TEXT NOT NULL,
    title      TEXT NOT NULL,
    purpose    TEXT DEFAULT '',
    good       TEXT DEFAULT '',
    tag        TEXT DEFAULT '',
    readonly   INTEGER DEFAULT 0,
    source     TEXT DEFAULT 'schedule',
    sort_order INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT (datetime('now')),
    updated_at DATETIME DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_schedule_blocks_user ON schedule_blocks(user_id);

CREATE TABLE IF NOT EXISTS completions (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    block_id     TEXT NOT NULL REFERENCES schedule_blocks(id) ON DELETE CASCADE,
    date         TEXT NOT NULL,
    is_complete  INTEGER DEFAULT 0,
    completed_at DATETIME,
    UNIQUE (user_id, block_id, date)
);
CREATE INDEX IF NOT EXISTS idx_completions_user_date ON completions(user_id, date);

CREATE TABLE IF NOT EXISTS supplements (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    item       TEXT NOT NULL,
    goal       TEXT DEFAULT '',
    dose       TEXT DEFAULT '',
    tier       TEXT DEFAULT '',
    rule       TEXT DEFAULT '',
    time_at    TEXT DEFAULT '08:00',
    sort_order INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT (datetime('now')),
    updated_at DATETIME DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_supplements_user ON supplements(user_id);

CREATE TABLE IF NOT EXISTS supplement_logs (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    supplement_id TEXT NOT NULL REFERENCES supplements(id) ON DELETE CASCADE,
    date          TEXT NOT NULL,
    is_taken      INTEGER DEFAULT 0,
    taken_at      DATETIME,
    UNIQUE (user_id, supplement_id, date)
);
CREATE INDEX IF NOT EXISTS idx_supplement_logs_user_date ON supplement_logs(user_id, date);

CREATE TABLE IF NOT EXISTS foods (
    id                 TEXT PRIMARY KEY,
    name               TEXT NOT NULL,
    brand              TEXT DEFAULT '',
    calories_per_100g  REAL,
    protein_per_100g   REAL,
    carbs_per_100g     REAL,
    fat_per_100g       REAL,
    fiber_per_100g     REAL,
    sugar_per_100g     REAL,
    sodium_mg_per_100g REAL,
    is_verified        INTEGER DEFAULT 0,
    created_at         DATETIME DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_foods_name ON foods(name);

CREATE TABLE IF NOT EXISTS user_foods (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    food_id    TEXT NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
    created_at DATETIME DEFAULT (datetime('now')),
    UNIQUE (user_id, food_id)
);

CREATE TABLE IF NOT EXISTS meal_templates (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    day_of_week TEXT NOT NULL,
    name        TEXT NOT NULL,
    examples    TEXT DEFAULT '',
    grams       REAL,
    food_id     TEXT REFERENCES foods(id),
    sort_order  INTEGER DEFAULT 0,
    created_at  DATETIME DEFAULT (datetime('now')),
    updated_at  DATETIME DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_meal_templates_user ON meal_templates(user_id);

CREATE TABLE IF NOT EXISTS meal_template_tags (
    id               TEXT PRIMARY KEY,
    meal_template_id TEXT NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
    label            TEXT NOT NULL,
    value            TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meal_template_tags_template ON meal_template_tags(meal_template_id);

CREATE TABLE IF NOT EXISTS meal_logs (
    id               TEXT PRIMARY KEY,
    user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    meal_template_id TEXT NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
    date             TEXT NOT NULL,
    is_eaten         INTEGER DEFAULT 0,
    eaten_at         DATETIME,
    UNIQUE (user_id, meal_template_id, date)
);
CREATE INDEX IF NOT EXISTS idx_meal_logs_user_date ON meal_logs(user_id, date);

CREATE TABLE IF NOT EXISTS daily_logs (
    id      TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date    TEXT NOT NULL,
    day     TEXT DEFAULT '',
    bw      TEXT DEFAULT '',
    sleep   TEXT DEFAULT '',
    steps   TEXT DEFAULT '',
    top     TEXT DEFAULT '',
    notes   TEXT DEFAULT '',
    UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS supplement_database (
    id                    TEXT PRIMARY KEY,
    name                  TEXT NOT NULL UNIQUE,
    category              TEXT DEFAULT '',
    typical_dose          TEXT DEFAULT '',
    timing_recommendation TEXT DEFAULT '',
    benefits              TEXT DEFAULT '',
    precautions           TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS gym_programs (
    id          TEXT PRIMARY KEY,
    user_id     TEXT REFERENCES users(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    description TEXT DEFAULT '',
    goal        TEXT DEFAULT '',
    is_system   INTEGER DEFAULT 0,
    created_at  DATETIME DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS program_days (
    id         TEXT PRIMARY KEY,
    program_id TEXT NOT NULL REFERENCES gym_programs(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    day_order  INTEGER DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_program_days_program ON program_days(program_id);

CREATE TABLE IF NOT EXISTS program_exercises (
    id            TEXT PRIMARY KEY,
    day_id        TEXT NOT NULL REFERENCES program_days(id) ON DELETE CASCADE,
    exercise_name TEXT NOT NULL,
    sets          TEXT DEFAULT '',
    reps          TEXT DEFAULT '',
    rir           TEXT DEFAULT '',
    rest_seconds  TEXT DEFAULT '',
    notes         TEXT DEFAULT '',
    progression   TEXT DEFAULT '',
    sort_order    INTEGER DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_program_exercises_day ON program_exercises(day_id);
`
