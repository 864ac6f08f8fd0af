package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/pupuledger/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestInitRepositories_Memory() {
	s.app.cfg = &config.Config{Storage: config.StorageMemory}

	err := s.app.initRepositories(context.Background())

	s.Require().NoError(err)
	s.NotNil(s.app.repo)
	s.NotNil(s.app.repo.TxManager)
	s.Nil(s.app.pool)
}

func (s *ApplicationSuite) TestInitRepositories_BadDatabaseURI() {
	s.app.cfg = &config.Config{Storage: config.StoragePostgres, Database: "://not-a-uri"}

	err := s.app.initRepositories(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
