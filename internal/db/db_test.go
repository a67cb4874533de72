package db

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor("mysql", "user:pass@tcp(localhost:3306)/blog")
	assert.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = dialectorFor("postgres", "host=localhost dbname=blog")
	assert.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = dialectorFor("oracle", "")
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

// recordDDL runs Migrate against an empty mysql schema and returns the CREATE statements
// it issued, with identifier quoting removed.
func recordDDL(t *testing.T) string {
	t.Helper()

	var (
		mu         sync.Mutex
		statements = map[string]bool{}
	)
	matcher := sqlmock.QueryMatcherFunc(func(expected, actual string) error {
		re, err := regexp.Compile(expected)
		if err != nil {
			return err
		}
		if !re.MatchString(actual) {
			return fmt.Errorf("%q does not match %q", actual, expected)
		}
		if strings.HasPrefix(strings.TrimSpace(actual), "CREATE") {
			mu.Lock()
			statements[strings.ReplaceAll(actual, "`", "")] = true
			mu.Unlock()
		}
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	mock.MatchExpectationsInOrder(false)

	// Every table is reported missing, so each one is created from scratch.
	for i := 0; i < 10; i++ {
		mock.ExpectQuery(`SCHEMA_NAME`).
			WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}).AddRow("blog"))
		mock.ExpectQuery(`SELECT DATABASE\(\)`).
			WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow("blog"))
		mock.ExpectQuery(`information_schema\.tables`).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
		mock.ExpectExec(`^CREATE`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))

	mu.Lock()
	defer mu.Unlock()
	ddl := make([]string, 0, len(statements))
	for stmt := range statements {
		ddl = append(ddl, stmt)
	}
	return strings.Join(ddl, "\n")
}

func TestMigrate_SchemaConstraints(t *testing.T) {
	ddl := recordDDL(t)

	for _, table := range []string{"users", "blog_posts", "comments"} {
		assert.Contains(t, ddl, "CREATE TABLE "+table+" ")
	}

	assert.Contains(t, ddl, "UNIQUE INDEX idx_users_username (username)")
	assert.Contains(t, ddl, "UNIQUE INDEX idx_users_email (email)")

	assert.Contains(t, ddl, "CONSTRAINT fk_blog_posts_author FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE RESTRICT")
	assert.Contains(t, ddl, "CONSTRAINT fk_comments_author FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE RESTRICT")
	assert.Contains(t, ddl, "CONSTRAINT fk_comments_post FOREIGN KEY (post_id) REFERENCES blog_posts(id) ON DELETE RESTRICT")
	assert.NotContains(t, ddl, "ON DELETE CASCADE")
}
