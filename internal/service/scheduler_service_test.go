package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "03:30", want: "0 30 3 * * *"},
		{in: "0:00", want: "0 0 0 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "1:2:3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := buildDailySpec(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedulerService_Schedule(t *testing.T) {
	s := NewSchedulerService(time.UTC, time.Second, zap.NewNop())
	noop := func(context.Context) error { return nil }

	_, err := s.ScheduleDaily("daily", "04:15", noop)
	require.NoError(t, err)
	_, err = s.ScheduleInterval("interval", 90*time.Minute, noop)
	require.NoError(t, err)
	_, err = s.ScheduleInterval("sub-second", 10*time.Millisecond, noop)
	require.NoError(t, err)

	_, err = s.ScheduleInterval("disabled", 0, noop)
	assert.Error(t, err)
	_, err = s.ScheduleDaily("broken", "25:00", noop)
	assert.Error(t, err)

	assert.Equal(t, 3, s.Entries())
}

func TestSchedulerService_RunsIntervalJob(t *testing.T) {
	s := NewSchedulerService(time.UTC, time.Second, zap.NewNop())
	ran := make(chan struct{}, 1)

	_, err := s.ScheduleInterval("tick", time.Second, func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestSchedulerService_WrapLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSchedulerService(time.UTC, time.Second, zap.New(core))

	var deadline bool
	s.wrap("broken", func(ctx context.Context) error {
		_, deadline = ctx.Deadline()
		return errors.New("boom")
	})()

	assert.True(t, deadline, "job context must carry the run timeout")
	failed := logs.FilterMessage("job failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "broken", failed[0].ContextMap()["job"])
	assert.Equal(t, "boom", failed[0].ContextMap()["error"])

	s.wrap("fine", func(context.Context) error { return nil })()
	assert.Equal(t, 1, logs.FilterMessage("job finished").Len())
}
