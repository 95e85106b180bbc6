package database

// schema is applied by Migrate; statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS class (
    id       SERIAL PRIMARY KEY,
    name     TEXT NOT NULL,
    subject  TEXT NOT NULL,
    room     TEXT NOT NULL DEFAULT '',
    schedule TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS student (
    id              SERIAL PRIMARY KEY,
    first_name      TEXT NOT NULL,
    last_name       TEXT NOT NULL,
    email           TEXT NOT NULL DEFAULT '',
    phone           TEXT NOT NULL DEFAULT '',
    grade_level     INTEGER NOT NULL DEFAULT 0,
    class_id        INTEGER NOT NULL DEFAULT 0,
    parent_name     TEXT NOT NULL DEFAULT '',
    parent_email    TEXT NOT NULL,
    parent_phone    TEXT NOT NULL DEFAULT '',
    enrollment_date TIMESTAMPTZ NOT NULL,
    status          TEXT NOT NULL DEFAULT 'active',
    photo_url       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS student_parent_email_idx ON student (parent_email);

CREATE TABLE IF NOT EXISTS grade (
    id              SERIAL PRIMARY KEY,
    student_id      INTEGER NOT NULL REFERENCES student (id) ON DELETE CASCADE,
    subject         TEXT NOT NULL,
    assignment_name TEXT NOT NULL,
    score           DOUBLE PRECISION NOT NULL DEFAULT 0,
    max_score       DOUBLE PRECISION NOT NULL DEFAULT 0,
    weight          DOUBLE PRECISION NOT NULL DEFAULT 0,
    date            TIMESTAMPTZ NOT NULL,
    type            TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS grade_student_id_idx ON grade (student_id);

CREATE TABLE IF NOT EXISTS attendance (
    id         SERIAL PRIMARY KEY,
    student_id INTEGER NOT NULL REFERENCES student (id) ON DELETE CASCADE,
    date       DATE NOT NULL,
    status     TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    UNIQUE (student_id, date)
);

CREATE TABLE IF NOT EXISTS assignment (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    subject     TEXT NOT NULL,
    class_id    INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    due_date    TIMESTAMPTZ NOT NULL,
    points      DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS notification_preference (
    id                    SERIAL PRIMARY KEY,
    parent_email          TEXT NOT NULL UNIQUE,
    grade_updates         BOOLEAN NOT NULL DEFAULT TRUE,
    attendance_alerts     BOOLEAN NOT NULL DEFAULT TRUE,
    assignment_deadlines  BOOLEAN NOT NULL DEFAULT TRUE,
    general_announcements BOOLEAN NOT NULL DEFAULT TRUE,
    email_frequency       TEXT NOT NULL DEFAULT 'immediate',
    updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS email_log (
    id            SERIAL PRIMARY KEY,
    recipient     TEXT NOT NULL,
    subject       TEXT NOT NULL,
    body          TEXT NOT NULL,
    type          TEXT NOT NULL,
    status        TEXT NOT NULL,
    student_id    INTEGER NOT NULL DEFAULT 0,
    grade_id      INTEGER NOT NULL DEFAULT 0,
    attendance_id INTEGER NOT NULL DEFAULT 0,
    assignment_id INTEGER NOT NULL DEFAULT 0,
    timestamp     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS email_log_timestamp_idx ON email_log (timestamp);
`
