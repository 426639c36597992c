package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"
)

// User-facing fallback strings. The gateway degrades to these instead
// of surfacing an error: no assist failure may break the posting
// workflow.
const (
	MsgNoCredential = "API Key not configured."
	MsgMissingTitle = "يرجى كتابة عنوان المشروع أولاً"
	MsgEmptyReply   = "لم يتم استلام رد."
	MsgUpstreamErr  = "حدث خطأ أثناء الاتصال بالذكاء الاصطناعي."
)

// descriptionPrompt wraps a project title into the drafting
// instruction sent upstream.
const descriptionPrompt = `اكتب وصفاً احترافياً وتفصيلياً لمشروع مقاولات بعنوان: "%s". اجعله يتضمن المتطلبات التقنية والمواصفات المتوقعة.`

// Generator is the outbound text-generation capability. It is treated
// as an opaque function from prompt to text.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service is the one-shot AI-assist gateway used to pre-fill project
// descriptions.
type Service struct {
	gen    Generator
	logger *slog.Logger

	// Identical in-flight requests are coalesced so that repeated
	// submissions while a call is outstanding trigger one upstream
	// request.
	group singleflight.Group
}

// NewService creates an assist service. A nil generator means no
// credential is configured; the service then answers with
// MsgNoCredential without attempting any network call.
func NewService(gen Generator, logger *slog.Logger) *Service {
	return &Service{gen: gen, logger: logger}
}

// GenerateDescription produces a professional project description for
// the given title. It never fails: missing credential, missing title,
// an upstream error of any kind, or an empty upstream reply all
// degrade to a fixed placeholder string. Single attempt, no retry.
func (s *Service) GenerateDescription(ctx context.Context, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return MsgMissingTitle
	}
	if s.gen == nil {
		return MsgNoCredential
	}

	// The flight is shared between coalesced callers, so it must not
	// die with whichever caller happened to start it; each caller
	// discards the reply on its own cancellation instead.
	text, err, _ := s.group.Do(title, func() (any, error) {
		return s.gen.GenerateText(context.WithoutCancel(ctx), fmt.Sprintf(descriptionPrompt, title))
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("assist generation failed", "error", err)
		}
		return MsgUpstreamErr
	}

	reply := strings.TrimSpace(text.(string))
	if reply == "" {
		return MsgEmptyReply
	}
	return reply
}
