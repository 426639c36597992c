package assist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raedalharbi/muqawil/internal/domain/assist"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func TestAssist_GenerateDescription(t *testing.T) {
	gen := &stubGenerator{reply: "وصف احترافي للمشروع"}
	svc := assist.NewService(gen, nil)

	got := svc.GenerateDescription(context.Background(), "بناء فيلا سكنية")
	require.Equal(t, "وصف احترافي للمشروع", got)
	require.Equal(t, 1, gen.calls)
}

func TestAssist_NoCredential(t *testing.T) {
	// A nil generator means no API key was configured; the gateway
	// answers with the placeholder and never attempts a network call.
	svc := assist.NewService(nil, nil)

	got := svc.GenerateDescription(context.Background(), "بناء فيلا سكنية")
	require.Equal(t, assist.MsgNoCredential, got)
}

func TestAssist_MissingTitle(t *testing.T) {
	gen := &stubGenerator{reply: "وصف"}
	svc := assist.NewService(gen, nil)

	got := svc.GenerateDescription(context.Background(), "   ")
	require.Equal(t, assist.MsgMissingTitle, got)
	require.Zero(t, gen.calls)
}

func TestAssist_UpstreamError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := assist.NewService(gen, nil)

	got := svc.GenerateDescription(context.Background(), "بناء فيلا سكنية")
	require.Equal(t, assist.MsgUpstreamErr, got)
	require.Equal(t, 1, gen.calls)
}

type ctxGenerator struct {
	reply  string
	ctxErr error
}

func (g *ctxGenerator) GenerateText(ctx context.Context, _ string) (string, error) {
	g.ctxErr = ctx.Err()
	return g.reply, nil
}

func TestAssist_DetachedFromCallerCancellation(t *testing.T) {
	// One caller navigating away must not poison the shared flight for
	// anyone coalesced onto it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &ctxGenerator{reply: "وصف"}
	svc := assist.NewService(gen, nil)

	got := svc.GenerateDescription(ctx, "بناء فيلا سكنية")
	require.Equal(t, "وصف", got)
	require.NoError(t, gen.ctxErr)
}

func TestAssist_EmptyReply(t *testing.T) {
	gen := &stubGenerator{reply: "  "}
	svc := assist.NewService(gen, nil)

	got := svc.GenerateDescription(context.Background(), "بناء فيلا سكنية")
	require.Equal(t, assist.MsgEmptyReply, got)
}
