package domain_test

import (
	"testing"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps_WireShape(t *testing.T) {
	list := []domain.Step{
		domain.Compare{I: 0, J: 4},
		domain.Swap{I: 1, J: 2},
		domain.Pivot{Index: 0},
		domain.ClearPivot{},
		domain.Range{Lo: 0, Hi: 4},
		domain.ClearRange{},
		domain.Boundary{K: 2, Lo: 0, Hi: 4, Visible: true},
		domain.MarkLeft{I: 1},
		domain.MarkRight{I: 3},
		domain.ClearMarks{},
	}

	raw, err := domain.MarshalSteps(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"t":"compare","i":0,"j":4},
		{"t":"swap","i":1,"j":2},
		{"t":"pivot","i":0},
		{"t":"pivot"},
		{"t":"range","lo":0,"hi":4},
		{"t":"range"},
		{"t":"boundary","k":2,"lo":0,"hi":4,"show":true},
		{"t":"markL","i":1},
		{"t":"markR","i":3},
		{"t":"clearMarks"}
	]`, string(raw))

	back, err := domain.UnmarshalSteps(raw)
	require.NoError(t, err)
	assert.Equal(t, list, back)
}

func TestSteps_DecodeNulls(t *testing.T) {
	back, err := domain.UnmarshalSteps([]byte(`[{"t":"pivot","i":null},{"t":"range","lo":null,"hi":null},{"t":"boundary","k":1,"lo":0,"hi":2,"show":false}]`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{domain.ClearPivot{}, domain.ClearRange{}, domain.Boundary{K: 1, Lo: 0, Hi: 2}}, back)
}

func TestSteps_DecodeErrors(t *testing.T) {
	_, err := domain.UnmarshalSteps([]byte(`[{"t":"shuffle"}]`))
	assert.ErrorIs(t, err, domain.ErrUnknownStep)

	_, err = domain.UnmarshalSteps([]byte(`[{"t":"range","lo":1}]`))
	assert.ErrorIs(t, err, domain.ErrMalformedStep)

	_, err = domain.UnmarshalSteps([]byte(`[{"t":"compare","i":1}]`))
	assert.ErrorIs(t, err, domain.ErrMalformedStep)

	_, err = domain.UnmarshalSteps([]byte(`{`))
	assert.Error(t, err)
}

func TestCountKind(t *testing.T) {
	list := []domain.Step{domain.Pivot{Index: 1}, domain.ClearPivot{}, domain.Compare{I: 0, J: 1}}
	assert.Equal(t, 2, domain.CountKind(list, domain.KindPivot))
	assert.Equal(t, 1, domain.CountKind(list, domain.KindCompare))
	assert.Zero(t, domain.CountKind(list, domain.KindSwap))
}
