package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaleDeliveriesLister struct {
	mock.Mock
}

func (m *MockStaleDeliveriesLister) Handle(ctx context.Context, query queries.ListStaleDeliveriesQuery) ([]queries.DeliveryView, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.DeliveryView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Start() error { return m.Called().Error(0) }
func (m *MockJob) Stop()        { m.Called() }

var now = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchBacklogJob_Run_UsesThresholdAsCutoff(t *testing.T) {
	lister := new(MockStaleDeliveriesLister)
	lister.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListStaleDeliveriesQuery) bool {
		return q.AssignedBefore().Equal(now.Add(-10 * time.Minute))
	})).Return([]queries.DeliveryView{
		{ID: kernel.NewUUID(), OrderCode: "QB-20250314-AAAAAAAA", AssignedAt: now.Add(-25 * time.Minute)},
		{ID: kernel.NewUUID(), OrderCode: "QB-20250314-BBBBBBBB", AssignedAt: now.Add(-11 * time.Minute)},
	}, nil).Once()
	job := jobs.NewDispatchBacklogJob(lister, "@every 1m", 10*time.Minute, func() time.Time { return now }, discard())

	count := job.Run(context.Background())

	assert.Equal(t, 2, count)
	lister.AssertExpectations(t)
}

func TestDispatchBacklogJob_Run_QueryFailure(t *testing.T) {
	lister := new(MockStaleDeliveriesLister)
	lister.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	job := jobs.NewDispatchBacklogJob(lister, "@every 1m", time.Minute, func() time.Time { return now }, discard())

	assert.Zero(t, job.Run(context.Background()))
	lister.AssertExpectations(t)
}

func TestDispatchBacklogJob_Start_InvalidSchedule(t *testing.T) {
	job := jobs.NewDispatchBacklogJob(new(MockStaleDeliveriesLister), "not a schedule", time.Minute, nil, discard())

	require.Error(t, job.Start())
}

func TestDispatchBacklogJob_StartStop(t *testing.T) {
	job := jobs.NewDispatchBacklogJob(new(MockStaleDeliveriesLister), "0 0 3 * * *", time.Minute, nil, discard())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	first := new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second := new(MockJob)
	second.On("Start").Return(errors.New("bad schedule")).Once()

	err := jobs.NewJobManager(first, second).StartAll()

	require.Error(t, err)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}

func TestJobManager_StopAll(t *testing.T) {
	first := new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second := new(MockJob)
	second.On("Start").Return(nil).Once()
	second.On("Stop").Once()
	manager := jobs.NewJobManager(first, second)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
	manager.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}
