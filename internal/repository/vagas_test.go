package repository

import (
	"testing"
	"time"

	"direito-hub-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVagasRepository_GetValida(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewVagasRepository(db)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"chave_consulta", "keywords", "payload", "total", "expira_em"}).
		AddRow("abc123", "advogado", []byte(`[]`), 42, now.Add(30*time.Minute))

	mock.ExpectQuery(`SELECT \* FROM "consultas_vagas" WHERE chave_consulta = \$1 AND expira_em >= \$2`).
		WithArgs("abc123", now, 1).
		WillReturnRows(rows)

	consulta, err := repo.GetValida("abc123", now)
	require.NoError(t, err)
	require.NotNil(t, consulta)
	assert.Equal(t, 42, consulta.Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVagasRepository_GetValida_NilOnMiss(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewVagasRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "consultas_vagas"`).
		WithArgs("abc123", sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"chave_consulta"}))

	consulta, err := repo.GetValida("abc123", time.Now())
	require.NoError(t, err)
	assert.Nil(t, consulta)
}

func TestVagasRepository_Upsert(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewVagasRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "consultas_vagas" .* ON CONFLICT \("chave_consulta"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Upsert(&models.ConsultaVagas{
		ChaveConsulta: "abc123",
		Keywords:      "advogado",
		Payload:       []byte(`[]`),
		ExpiraEm:      time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
