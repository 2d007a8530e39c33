package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

func (s *RepositorySuite) TestInsertEvents() {
	at := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.Event{
		{Name: "abc", Kind: model.EventBid, Account: "alice", Amount: 150, At: at},
		{Name: "abc", Kind: model.EventBid, Account: "bob", Amount: 80, At: at.Add(time.Second)},
		{Name: "xyz", Kind: model.EventBid, Account: "alice", Amount: 5, At: at.Add(2 * time.Second)},
	}

	s.metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, events))
	s.Equal(uint64(len(events)), s.countRows(eventsTable))
}

func (s *RepositorySuite) TestEventsByName() {
	at := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.Event{
		{Name: "abc", Kind: model.EventResolved, Account: "alice", Amount: 80, At: at.Add(time.Minute)},
		{Name: "abc", Kind: model.EventBid, Account: "alice", Amount: 150, At: at},
		{Name: "other", Kind: model.EventBid, Account: "carol", Amount: 1, At: at},
		{Name: "abc", Kind: model.EventReset, At: at.Add(2 * time.Minute)},
	}

	s.metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("events_by_name", gomock.Nil(), gomock.Any()).Times(2)
	s.Require().NoError(s.repo.InsertEvents(s.testCtx, events))

	got, err := s.repo.EventsByName(s.testCtx, "abc", 10)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(model.EventBid, got[0].Kind)
	s.Equal(model.EventResolved, got[1].Kind)
	s.Equal(model.EventReset, got[2].Kind)
	s.True(got[0].At.Equal(at))
	s.Equal(model.AccountID(""), got[2].Account)

	limited, err := s.repo.EventsByName(s.testCtx, "abc", 1)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(model.EventBid, limited[0].Kind)
}

func (s *RepositorySuite) TestEventsByAccount() {
	at := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.Event{
		{Name: "abc", Kind: model.EventBid, Account: "alice", Amount: 150, At: at},
		{Name: "xyz", Kind: model.EventBid, Account: "alice", Amount: 20, At: at.Add(time.Minute)},
		{Name: "abc", Kind: model.EventBid, Account: "bob", Amount: 80, At: at},
	}

	s.metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("events_by_account", gomock.Nil(), gomock.Any())
	s.Require().NoError(s.repo.InsertEvents(s.testCtx, events))

	got, err := s.repo.EventsByAccount(s.testCtx, "alice", 10)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(model.Name("xyz"), got[0].Name)
	s.Equal(model.Amount(20), got[0].Amount)
}
