package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTransient = errors.New("transient")
	errFinal     = errors.New("final")
)

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func TestDo(t *testing.T) {
	tests := []struct {
		name         string
		errs         []error // returned in order; nil means success
		maxRetries   int
		wantCalls    int
		wantErr      error
		wantRetryLog []int
	}{
		{
			name:       "succeeds first time",
			errs:       []error{nil},
			maxRetries: 2,
			wantCalls:  1,
		},
		{
			name:         "recovers after two transient failures",
			errs:         []error{errTransient, errTransient, nil},
			maxRetries:   2,
			wantCalls:    3,
			wantRetryLog: []int{1, 2},
		},
		{
			name:         "exhausts retries",
			errs:         []error{errTransient, errTransient, errTransient, nil},
			maxRetries:   2,
			wantCalls:    3,
			wantErr:      errTransient,
			wantRetryLog: []int{1, 2},
		},
		{
			name:       "final error is not retried",
			errs:       []error{errFinal, nil},
			maxRetries: 2,
			wantCalls:  1,
			wantErr:    errFinal,
		},
		{
			name:         "final error after a transient one",
			errs:         []error{errTransient, errFinal, nil},
			maxRetries:   2,
			wantCalls:    2,
			wantErr:      errFinal,
			wantRetryLog: []int{1},
		},
		{
			name:       "zero retries",
			errs:       []error{errTransient, nil},
			maxRetries: 0,
			wantCalls:  1,
			wantErr:    errTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var retried []int
			p := Policy{
				MaxRetries:  tt.maxRetries,
				IsTransient: isTransient,
				OnRetry:     func(attempt int, _ error) { retried = append(retried, attempt) },
			}

			got, err := Do(context.Background(), p, func(context.Context) (int, error) {
				err := tt.errs[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return 42, nil
			})

			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != 42 {
				t.Errorf("result = %d, want 42", got)
			}
			if len(retried) != len(tt.wantRetryLog) {
				t.Errorf("OnRetry attempts = %v, want %v", retried, tt.wantRetryLog)
			}
		})
	}
}

func TestDo_NilClassifierNeverRetries(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Policy{MaxRetries: 5}, func(context.Context) (struct{}, error) {
		calls++
		return struct{}{}, errTransient
	})
	if calls != 1 || !errors.Is(err, errTransient) {
		t.Errorf("calls = %d, err = %v; want a single attempt", calls, err)
	}
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{
		MaxRetries:  2,
		Backoff:     time.Hour,
		IsTransient: isTransient,
		OnRetry:     func(int, error) { cancel() },
	}

	calls := 0
	_, err := Do(ctx, p, func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
