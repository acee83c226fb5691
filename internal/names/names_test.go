package names

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gamebank/pkg/clients"
)

type stubResolver struct {
	calls atomic.Int32
	name  string
	err   error
}

func (s *stubResolver) ResolveName(_ context.Context, _ string) (string, error) {
	s.calls.Add(1)
	return s.name, s.err
}

func TestPassthrough(t *testing.T) {
	name, err := Passthrough{}.ResolveName(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, "player-1", name)

	_, err = Passthrough{}.ResolveName(context.Background(), "")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestHTTPResolver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/players/steve":
			_, _ = w.Write([]byte(`{"id":"steve","name":"Steve"}`))
		case "/players/ghost":
			w.WriteHeader(http.StatusNotFound)
		case "/players/blank":
			_, _ = w.Write([]byte(`{"id":"blank","name":""}`))
		case "/players/garbage":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer server.Close()

	resolver := NewHTTPResolver(server.URL+"/players/", clients.NewHTTPClient())

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "known player", id: "steve", want: "Steve"},
		{name: "unknown player", id: "ghost", wantErr: ErrPlayerNotFound},
		{name: "empty name", id: "blank", wantErr: ErrPlayerNotFound},
		{name: "empty id", id: "", wantErr: ErrPlayerNotFound},
		{name: "bad body", id: "garbage", anyErr: true},
		{name: "upstream failure", id: "other", anyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveName(context.Background(), tt.id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrPlayerNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBreakerResolver_TripsOnFailures(t *testing.T) {
	next := &stubResolver{err: errors.New("connection refused")}
	resolver := NewBreakerResolver(next, BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 3,
	})

	for i := 0; i < 3; i++ {
		_, err := resolver.ResolveName(context.Background(), "p")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, resolver.State())

	_, err := resolver.ResolveName(context.Background(), "p")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), next.calls.Load())
}

func TestBreakerResolver_UnknownPlayerDoesNotTrip(t *testing.T) {
	next := &stubResolver{err: ErrPlayerNotFound}
	resolver := NewBreakerResolver(next, BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 2,
	})

	for i := 0; i < 5; i++ {
		_, err := resolver.ResolveName(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, resolver.State())
	assert.Equal(t, int32(5), next.calls.Load())
}

func TestBreakerResolver_PassesName(t *testing.T) {
	resolver := NewBreakerResolver(&stubResolver{name: "Alex"}, DefaultBreakerConfig())

	name, err := resolver.ResolveName(context.Background(), "alex")
	require.NoError(t, err)
	assert.Equal(t, "Alex", name)
}

func TestCachedResolver(t *testing.T) {
	ttl := time.Hour

	t.Run("hit skips the name service", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &stubResolver{name: "unused"}
		mock.ExpectGet(keyPrefix + "steve").SetVal("Steve")

		name, err := NewCachedResolver(next, db, ttl).ResolveName(context.Background(), "steve")

		require.NoError(t, err)
		assert.Equal(t, "Steve", name)
		assert.Zero(t, next.calls.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss resolves and stores", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &stubResolver{name: "Steve"}
		mock.ExpectGet(keyPrefix + "steve").RedisNil()
		mock.ExpectSet(keyPrefix+"steve", "Steve", ttl).SetVal("OK")

		name, err := NewCachedResolver(next, db, ttl).ResolveName(context.Background(), "steve")

		require.NoError(t, err)
		assert.Equal(t, "Steve", name)
		assert.Equal(t, int32(1), next.calls.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis outage falls through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &stubResolver{name: "Steve"}
		mock.ExpectGet(keyPrefix + "steve").SetErr(errors.New("dial tcp: refused"))
		mock.ExpectSet(keyPrefix+"steve", "Steve", ttl).SetErr(errors.New("dial tcp: refused"))

		name, err := NewCachedResolver(next, db, ttl).ResolveName(context.Background(), "steve")

		require.NoError(t, err)
		assert.Equal(t, "Steve", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown player is not cached", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &stubResolver{err: ErrPlayerNotFound}
		mock.ExpectGet(keyPrefix + "ghost").RedisNil()

		_, err := NewCachedResolver(next, db, ttl).ResolveName(context.Background(), "ghost")

		assert.ErrorIs(t, err, ErrPlayerNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
