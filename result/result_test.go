package result

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Arms(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	v, present := ok.Value()
	assert.True(t, present)
	assert.Equal(t, 42, v)
	assert.True(t, ok.Failure().IsZero())

	failed := Err[int](NewNotFoundFailure("no such item"))
	assert.True(t, failed.IsErr())
	assert.False(t, failed.IsOk())
	_, present = failed.Value()
	assert.False(t, present)
	assert.Equal(t, FailureKind_NOT_FOUND, failed.Failure().Kind())
}

func TestResult_Match(t *testing.T) {
	tests := map[string]struct {
		result      Result[string]
		expectedOK  bool
		expectedVal string
		expectedMsg string
	}{
		"ok-arm": {
			result:      Ok("hello"),
			expectedOK:  true,
			expectedVal: "hello",
		},
		"err-arm": {
			result:      Err[string](NewServerFailure("boom")),
			expectedOK:  false,
			expectedMsg: "boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotVal, gotMsg string
			var gotOK bool
			tt.result.Match(
				func(v string) { gotOK, gotVal = true, v },
				func(f Failure) { gotMsg = f.Message() },
			)
			assert.Equal(t, tt.expectedOK, gotOK)
			assert.Equal(t, tt.expectedVal, gotVal)
			assert.Equal(t, tt.expectedMsg, gotMsg)
		})
	}
}

func TestResult_ValueOr(t *testing.T) {
	assert.Equal(t, 7, Ok(7).ValueOr(1))
	assert.Equal(t, 1, Err[int](NewCacheFailure("cold")).ValueOr(1))
}

func TestResult_MustValue_Panics(t *testing.T) {
	assert.Panics(t, func() {
		Err[int](NewServerFailure("boom")).MustValue()
	})
	assert.NotPanics(t, func() {
		assert.Equal(t, 3, Ok(3).MustValue())
	})
}

func TestMap_And_FlatMap(t *testing.T) {
	doubled := Map(Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.MustValue())

	failure := NewValidationFailure("bad input")
	mappedErr := Map(Err[int](failure), func(v int) int { return v * 2 })
	assert.True(t, mappedErr.IsErr())
	assert.Equal(t, failure, mappedErr.Failure())

	chained := FlatMap(Ok(2), func(v int) Result[string] {
		return Ok(fmt.Sprintf("value=%d", v))
	})
	assert.Equal(t, "value=2", chained.MustValue())

	shortCircuit := FlatMap(Err[int](failure), func(v int) Result[string] {
		t.Fatal("FlatMap must not invoke fn on the error arm")
		return Ok("")
	})
	assert.Equal(t, failure, shortCircuit.Failure())
}

func TestFold(t *testing.T) {
	got := Fold(Ok(10),
		func(v int) string { return fmt.Sprintf("ok:%d", v) },
		func(f Failure) string { return "err:" + f.Message() },
	)
	assert.Equal(t, "ok:10", got)

	got = Fold(Err[int](NewNetworkFailure("offline")),
		func(v int) string { return fmt.Sprintf("ok:%d", v) },
		func(f Failure) string { return "err:" + f.Message() },
	)
	assert.Equal(t, "err:offline", got)
}

func TestFrom(t *testing.T) {
	assert.Equal(t, 5, From(5, nil).MustValue())

	r := From(0, errors.New("database error"))
	assert.True(t, r.IsErr())
	assert.Equal(t, FailureKind_SERVER, r.Failure().Kind())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestTranslate(t *testing.T) {
	tests := map[string]struct {
		err          error
		expectedKind FailureKind
	}{
		"deadline-exceeded-is-network": {
			err:          fmt.Errorf("fetch: %w", context.DeadlineExceeded),
			expectedKind: FailureKind_NETWORK,
		},
		"canceled-is-network": {
			err:          context.Canceled,
			expectedKind: FailureKind_NETWORK,
		},
		"net-timeout-is-network": {
			err:          timeoutErr{},
			expectedKind: FailureKind_NETWORK,
		},
		"plain-error-is-server": {
			err:          errors.New("500 internal server error"),
			expectedKind: FailureKind_SERVER,
		},
		"existing-failure-passes-through": {
			err:          NewNotFoundFailure("gone"),
			expectedKind: FailureKind_NOT_FOUND,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := Translate(tt.err)
			assert.Equal(t, tt.expectedKind, f.Kind())
		})
	}
}

func TestFailure_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	f := NewNetworkFailure("connection failed").WithCause(cause)

	assert.ErrorIs(t, f, cause)
	assert.Contains(t, f.Error(), "NETWORK")
	assert.Contains(t, f.Error(), "connection refused")

	extracted, ok := AsFailure(fmt.Errorf("wrapped: %w", f))
	assert.True(t, ok)
	assert.Equal(t, FailureKind_NETWORK, extracted.Kind())
}
