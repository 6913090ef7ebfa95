package handle

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/mork/env"
	"github.com/vkngwrapper/mork/node"
	"golang.org/x/exp/slog"
)

// explodingObject fails the test if anything reaches for its node
type explodingObject struct {
	t *testing.T
}

func (o explodingObject) AsNode() *node.Node {
	o.t.Fatal("object was reached through a handle that should have been rejected")
	return nil
}

type hollowObject struct {
	n node.Node
}

func (o *hollowObject) AsNode() *node.Node { return &o.n }

func newGateHandle(t *testing.T) (*Handle, *env.Env) {
	logger := slog.New(slog.NewJSONHandler(io.Discard))
	ev, err := env.New(logger, env.CreateOptions{})
	require.NoError(t, err)

	o := &ObjectBase{}
	o.InitObject(node.UsageHeap, nil)

	var storage Frame
	h, err := PlaceHandle(ev, &storage, o, MagicCell)
	require.NoError(t, err)
	return h, ev
}

func TestGateChecksTagFirst(t *testing.T) {
	h, ev := newGateHandle(t)
	h.tag = 0xDEADBEEF
	h.object = explodingObject{t: t}
	h.Node.MarkShut()

	_, err := h.GetGoodHandleObject(ev, true, MagicRow, false)
	require.True(t, errors.Is(err, ErrBadTag))
	require.Same(t, ErrBadTag, ev.LastError())
}

func TestGateFirstFailureWins(t *testing.T) {
	h, ev := newGateHandle(t)
	live := h.object

	h.object = nil
	_, err := h.GetGoodHandleObject(ev, false, MagicRow, false)
	require.True(t, errors.Is(err, ErrBadMagic))

	_, err = h.GetGoodHandleObject(ev, false, MagicCell, false)
	require.True(t, errors.Is(err, ErrNilHandleObject))

	h.object = &hollowObject{}
	_, err = h.GetGoodHandleObject(ev, false, MagicAny, false)
	require.True(t, errors.Is(err, ErrNonNodeObject))

	h.object = live
	live.AsNode().MarkClosing()
	_, err = h.GetGoodHandleObject(ev, false, MagicAny, false)
	require.True(t, errors.Is(err, ErrNonOpenObject))
	_, err = h.GetGoodHandleObject(ev, false, MagicAny, true)
	require.NoError(t, err)

	require.Equal(t, 4, ev.ErrorCount())
}

func TestGateWithoutEnv(t *testing.T) {
	h, ev := newGateHandle(t)

	_, err := h.GetGoodHandleObject(nil, false, MagicRow, false)
	require.True(t, errors.Is(err, ErrBadMagic))
	require.Equal(t, 0, ev.ErrorCount())
}

func TestGateRejectsDeadHandle(t *testing.T) {
	h, ev := newGateHandle(t)
	h.Node.MarkShut()

	_, err := h.GetGoodHandleObject(ev, false, MagicCell, true)
	require.NoError(t, err)

	// closedOkay admits closing and shut handles, never dead ones
	h.Node.MarkDead()
	_, err = h.GetGoodHandleObject(ev, false, MagicCell, true)
	require.True(t, errors.Is(err, ErrHandleDown))
	require.Contains(t, err.Error(), "AccessDead")
	require.Equal(t, 1, ev.ErrorCount())
}
