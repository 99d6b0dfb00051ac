package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academia_backend/internals/databases/dbtest"
	exerciseModel "academia_backend/internals/features/exercises/exercise/model"
	userModel "academia_backend/internals/features/users/user/model"
)

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := dbtest.New(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, RunAllSeeds(db, "data", bcrypt.MinCost), "run %d", i)
	}

	assert.Equal(t, int64(2), countRows(t, db, &userModel.UserModel{}))
	assert.Equal(t, int64(4), countRows(t, db, &exerciseModel.ExerciseModel{}))

	var teacher userModel.UserModel
	require.NoError(t, db.Where("email = ?", "professor@academia.local").First(&teacher).Error)
	assert.Equal(t, "teacher", teacher.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte("professor123")))
}

func TestRunAllSeedsSkipsInvalidRows(t *testing.T) {
	db := dbtest.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, usersFile), `[{"name":"X","email":"x@x.com","password":"p","role":"admin"},{"name":"Z","email":"z@x.com","password":"p","role":"student"}]`)
	writeFile(t, filepath.Join(dir, exercisesFile), `[{"name":"Y","description":"d","series":0,"repetitions":5}]`)

	require.NoError(t, RunAllSeeds(db, dir, bcrypt.MinCost))

	var users []userModel.UserModel
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1, "invalid role must be skipped")
	assert.Equal(t, "z@x.com", users[0].Email)
	assert.Zero(t, countRows(t, db, &exerciseModel.ExerciseModel{}), "invalid exercise must be skipped")
}

func TestRunAllSeedsMissingFile(t *testing.T) {
	db := dbtest.New(t)
	assert.Error(t, RunAllSeeds(db, t.TempDir(), bcrypt.MinCost))
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}
