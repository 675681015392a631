package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/goto/discuss/internal/store"
	"github.com/goto/discuss/internal/store/postgres"
	"github.com/goto/discuss/pkg/log"
)

const (
	testDBUser     = "test_user"
	testDBPassword = "test_pass"
	testDBName     = "test_db"
)

// NewTestStore starts a disposable postgres container and returns a migrated
// store connected to it.
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	opts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_DB=" + testDBName,
		},
	}
	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	cfg := store.Config{
		Host:            "localhost",
		User:            testDBUser,
		Password:        testDBPassword,
		Name:            testDBName,
		Port:            resource.GetPort("5432/tcp"),
		SslMode:         "disable",
		LogLevel:        "silent",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
	logger.Info(ctx, "starting test postgres", "port", cfg.Port)

	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	var st *postgres.Store
	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		st, err = postgres.NewClient(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := st.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	if err := st.Migrate(); err != nil {
		return nil, nil, nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}

// Truncate empties the given tables between tests.
func Truncate(st *postgres.Store, tables ...string) error {
	for _, table := range tables {
		if err := st.DB().Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
