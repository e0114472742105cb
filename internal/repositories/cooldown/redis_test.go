package cooldown

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAcquireOnce() {
	out, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: 24 * time.Hour})
	s.Require().NoError(err)
	s.True(out.Acquired)

	s.mr.FastForward(time.Hour)

	out, err = s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: 24 * time.Hour})
	s.Require().NoError(err)
	s.False(out.Acquired)
	s.Equal(23*time.Hour, out.Remaining)
}

func (s *RedisRepositoryTestSuite) TestAcquireAfterExpiry() {
	_, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: time.Hour})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	out, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: time.Hour})
	s.Require().NoError(err)
	s.True(out.Acquired)
}

func (s *RedisRepositoryTestSuite) TestKeysAreIndependent() {
	_, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: time.Hour})
	s.Require().NoError(err)

	out, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:bob", TTL: time.Hour})
	s.Require().NoError(err)
	s.True(out.Acquired)
}

func (s *RedisRepositoryTestSuite) TestRelease() {
	_, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: time.Hour})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Release(s.ctx, &ReleaseInput{Key: "daily:alice"}))

	out, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice", TTL: time.Hour})
	s.Require().NoError(err)
	s.True(out.Acquired)
}

func (s *RedisRepositoryTestSuite) TestAcquireValidatesInput() {
	_, err := s.repo.Acquire(s.ctx, &AcquireInput{Key: "daily:alice"})
	s.Error(err)

	_, err = s.repo.Acquire(s.ctx, nil)
	s.Error(err)
}
