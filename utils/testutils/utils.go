package testutils

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benoitkugler/gridlayout/utils"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertApprox compares lengths (or slices of lengths),
// up to the layout precision.
func AssertApprox(t *testing.T, got, exp interface{}) {
	t.Helper()
	opt := cmpopts.EquateApprox(0, float64(utils.Epsilon))
	if diff := cmp.Diff(exp, got, opt); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}
