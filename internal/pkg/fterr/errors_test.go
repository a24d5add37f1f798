package fterr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestSentinelStatusCodes(t *testing.T) {
	cases := map[*FieldError]int{
		ErrNotFound:      404,
		ErrInvalidReq:    400,
		ErrReadOnly:      403,
		ErrDuplicate:     400,
		ErrInternalError: 500,
	}
	for e, status := range cases {
		if e.StatusCode != status {
			t.Errorf("Expected %s to carry status %d, got %d", e.ErrorCode, status, e.StatusCode)
		}
	}
}
