package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
create table if not exists users (
	id            text primary key,
	email         text not null unique,
	name          text not null,
	avatar_url    text,
	password_hash text not null,
	created_at    timestamptz not null,
	updated_at    timestamptz not null
);

create table if not exists workspaces (
	id          text primary key,
	name        text not null,
	description text,
	owner_id    text not null,
	members     jsonb not null default '[]',
	created_at  timestamptz not null,
	updated_at  timestamptz not null
);

create table if not exists boards (
	id           text primary key,
	title        text not null,
	workspace_id text,
	visibility   text not null,
	owner_id     text not null,
	members      jsonb not null default '[]',
	created_at   timestamptz not null,
	updated_at   timestamptz not null
);

create table if not exists lists (
	id         text primary key,
	title      text not null,
	board_id   text not null,
	position   float8 not null,
	created_at timestamptz not null,
	updated_at timestamptz not null
);
create index if not exists lists_board_idx on lists (board_id, position);

create table if not exists cards (
	id          text primary key,
	title       text not null,
	description text,
	list_id     text not null,
	position    float8 not null,
	labels      text[] not null default '{}',
	assignees   text[] not null default '{}',
	due_date    timestamptz,
	created_at  timestamptz not null,
	updated_at  timestamptz not null
);
create index if not exists cards_list_idx on cards (list_id, position);

create table if not exists comments (
	id         text primary key,
	body       text not null,
	card_id    text not null,
	author_id  text not null,
	created_at timestamptz not null,
	updated_at timestamptz not null
);
create index if not exists comments_card_idx on comments (card_id, created_at);

create table if not exists activity_logs (
	id            text primary key,
	board_id      text not null,
	user_id       text not null,
	activity_type text not null,
	details       jsonb not null default '{}',
	created_at    timestamptz not null
);
create index if not exists activity_logs_board_idx on activity_logs (board_id, created_at desc);
`

// Migrate applies the schema. Statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
