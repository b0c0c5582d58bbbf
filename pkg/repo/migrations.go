package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func (p *Postgres) Migrate() error {
	m := gormigrate.New(p.db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	log.Info().Msg("[Db] start migrations")

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2025_05_02_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists bank_transactions
(
    id             varchar(36) not null primary key,
    booking_date   date        not null,
    value_date     date        not null,
    payer_name     text,
    payer_iban     text,
    description    text,
    amount         decimal     not null,
    currency       varchar(3)  not null,
    dedup_key      varchar(128) not null,
    source         varchar(16) not null,
    match_state    varchar(16) not null,
    matched_fee_id varchar(36),
    matched_amount decimal,
    hidden         boolean     not null default false,
    imported_at    timestamp   not null,
    version        bigint      not null default 0,
    constraint idx_bank_transactions_dedup_key unique (dedup_key)
);
`).Error
			},
		},
		{
			ID: "2025_05_02_KnownIbans",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists known_ibans
(
    iban       varchar(42) not null primary key,
    status     varchar(16) not null,
    child_id   varchar(36),
    created_at timestamp   not null
);
`).Error
			},
		},
		{
			ID: "2025_05_02_Warnings",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists transaction_warnings
(
    id             varchar(36) not null primary key,
    transaction_id varchar(36) not null,
    kind           varchar(32) not null,
    message        text        not null,
    child_id       varchar(36),
    created_at     timestamp   not null,
    resolved_at    timestamp
);
create index if not exists idx_transaction_warnings_transaction_id
    on transaction_warnings (transaction_id);
`).Error
			},
		},
		{
			ID: "2025_05_02_BankingConfigs",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists banking_configs
(
    id             varchar(36) not null primary key,
    bank_code      text        not null,
    login_id       text        not null,
    secret_enc     bytea       not null,
    endpoint       text        not null,
    account_number text        not null,
    adapter        varchar(16) not null default 'gateway',
    sync_enabled   boolean     not null default false,
    last_sync_at   timestamp,
    updated_at     timestamp   not null
);
create table if not exists sync_locks
(
    config_id varchar(36) not null primary key,
    token     varchar(36) not null,
    locked_at timestamp   not null
);
`).Error
			},
		},
		{
			ID: "2025_05_02_ImportBatches",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists import_batches
(
    id          varchar(36) not null primary key,
    file_name   text        not null,
    total_rows  integer     not null,
    imported    integer     not null,
    skipped     integer     not null,
    warnings    integer     not null,
    blacklisted integer     not null,
    created_at  timestamp   not null
);
`).Error
			},
		},
		{
			ID: "2025_05_16_MatchCandidates",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists match_candidates
(
    id             varchar(36)      not null primary key,
    transaction_id varchar(36)      not null,
    child_id       varchar(36)      not null,
    fee_id         varchar(36),
    stage          varchar(16)      not null,
    similarity     double precision not null,
    created_at     timestamp        not null
);
create index if not exists idx_match_candidates_transaction_id
    on match_candidates (transaction_id);
`).Error
			},
		},
		{
			ID: "2025_05_16_Allocations",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists allocations
(
    id             varchar(36) not null primary key,
    transaction_id varchar(36) not null,
    fee_id         varchar(36) not null,
    amount         decimal     not null,
    created_at     timestamp   not null
);
create index if not exists idx_allocations_transaction_id
    on allocations (transaction_id);
`).Error
			},
		},
		{
			// The children/guardians/fees tables are owned by the member
			// administration side; the creates below only bootstrap a fresh
			// database where that side has not migrated yet, and the alters
			// add the reconciliation columns to a pre-existing fees table.
			ID: "2025_06_01_FeeVersion",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists children
(
    id         varchar(36) not null primary key,
    first_name text        not null,
    last_name  text        not null,
    member_no  varchar(16) not null
);
create table if not exists guardians
(
    id        varchar(36) not null primary key,
    child_id  varchar(36) not null,
    full_name text        not null
);
create index if not exists idx_guardians_child_id on guardians (child_id);
create table if not exists fees
(
    id       varchar(36) not null primary key,
    child_id varchar(36) not null,
    kind     varchar(32) not null,
    amount   decimal     not null,
    late_fee decimal     not null default 0,
    due_date date        not null,
    paid     boolean     not null default false
);
create index if not exists idx_fees_child_id on fees (child_id);
alter table fees
    add column if not exists paid_by_transaction_id varchar(36);
alter table fees
    add column if not exists version bigint not null default 0;
`).Error
			},
		},
		{
			ID: "2025_06_20_WarningDismissed",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`alter table transaction_warnings
    add column if not exists dismissed boolean not null default false;
`).Error
			},
		},
		{
			ID: "2025_06_20_SyncRuns",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists sync_runs
(
    id           varchar(36) not null primary key,
    config_id    varchar(36) not null,
    window_from  timestamp   not null,
    window_to    timestamp   not null,
    fetched      integer     not null,
    imported     integer     not null,
    duplicates   integer     not null,
    outgoing     integer     not null,
    blacklisted  integer     not null,
    warnings     integer     not null,
    errors       integer     not null,
    completed_at timestamp   not null
);
create index if not exists idx_sync_runs_config_id on sync_runs (config_id);
`).Error
			},
		},
	}
}
