package repository

// Schema creates the project_configs table. Applied at startup; there is no
// migration history.
const Schema = `
CREATE TABLE IF NOT EXISTS project_configs (
	id                  BIGSERIAL PRIMARY KEY,
	title               VARCHAR(200),
	description         TEXT,
	project_type        VARCHAR(50)  NOT NULL,
	timeline            VARCHAR(50)  NOT NULL,
	difficulty          VARCHAR(50)  NOT NULL,
	tech_stack          TEXT,
	features            TEXT,
	deployment_platform VARCHAR(50)  DEFAULT 'github',
	repo_name           VARCHAR(100),
	include_readme      BOOLEAN      NOT NULL DEFAULT TRUE,
	include_license     BOOLEAN      NOT NULL DEFAULT FALSE,
	include_gitignore   BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at          TIMESTAMPTZ  NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS project_configs_created_at_idx ON project_configs (created_at DESC);
`
