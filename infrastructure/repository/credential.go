package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/database/postgres"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

//go:generate mockgen -source=credential.go -destination=mocks/credential.go -package=mocks

const credentialsTable = "session_credentials"

// CredentialRepository persiste a credencial da sessão entre execuções, por perfil
type CredentialRepository interface {
	// Load retorna nil, nil quando não há credencial salva
	Load(ctx context.Context, profile string) (*domain.Credential, error)
	Save(ctx context.Context, credential domain.Credential) error
	Delete(ctx context.Context, profile string) error
}

type credentialRepository struct {
	conn postgres.Queryer
}

func NewCredentialRepository(conn postgres.Queryer) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func loadCredentialQuery(profile string) squirrel.SelectBuilder {
	return squirrel.
		Select("profile", "user_id", "user_name", "user_email", "token", "saved_at").
		From(credentialsTable).
		Where(squirrel.Eq{"profile": profile}).
		PlaceholderFormat(squirrel.Dollar)
}

func saveCredentialQuery(c domain.Credential) squirrel.InsertBuilder {
	return squirrel.
		Insert(credentialsTable).
		Columns("profile", "user_id", "user_name", "user_email", "token", "saved_at").
		Values(c.Profile, c.User.ID, c.User.Name, c.User.Email, c.Token, c.SavedAt).
		Suffix(`ON CONFLICT (profile) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			user_name = EXCLUDED.user_name,
			user_email = EXCLUDED.user_email,
			token = EXCLUDED.token,
			saved_at = EXCLUDED.saved_at`).
		PlaceholderFormat(squirrel.Dollar)
}

func deleteCredentialQuery(profile string) squirrel.DeleteBuilder {
	return squirrel.
		Delete(credentialsTable).
		Where(squirrel.Eq{"profile": profile}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *credentialRepository) Load(ctx context.Context, profile string) (*domain.Credential, error) {
	query, args, err := loadCredentialQuery(profile).ToSql()
	if err != nil {
		return nil, err
	}

	var c domain.Credential
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&c.Profile,
		&c.User.ID,
		&c.User.Name,
		&c.User.Email,
		&c.Token,
		&c.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "repository: erro ao carregar credencial do perfil %s", profile)
	}

	return &c, nil
}

func (r *credentialRepository) Save(ctx context.Context, credential domain.Credential) error {
	query, args, err := saveCredentialQuery(credential).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "repository: erro ao salvar credencial do perfil %s", credential.Profile)
	}

	return nil
}

func (r *credentialRepository) Delete(ctx context.Context, profile string) error {
	query, args, err := deleteCredentialQuery(profile).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "repository: erro ao remover credencial do perfil %s", profile)
	}

	return nil
}
