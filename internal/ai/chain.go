package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	logrus "github.com/sirupsen/logrus"
)

// GeminiModelPriority lists the Gemini model variants in the order the
// chain tries them: newest/cheapest first, stable fallbacks after.
var GeminiModelPriority = []string{
	"gemini-3-flash-preview",
	"gemini-2.5-flash",
	"gemini-2.5-flash-preview-09-2025",
	"gemini-2.5-flash-lite-preview-09-2025",
}

// Apology is returned when every provider is exhausted. Advise is total:
// callers always get a non-empty string.
const Apology = "⚠️ معلش، السيستم عليه ضغط كبير حالياً ومش قادرين نوصل للموديل دلوقتي. جرب تاني كمان دقيقة."

const promptTemplate = `أنت خبير مواصلات في القاهرة. مستخدم بيسأل إزاي يروح من %s لـ %s.
جاوب بلهجة مصرية عامية بسيطة. نظم الإجابة في نقط.
قوله يركب إيه والأسعار والوقت التقريبي.
نبه دايما عليه ان الاسعار اللي بتديهاله هي اسعار تقريبيه مش بالظبط عشان دايما اسعار المواصلات في تغير.
لو مش عارف الطريق، قوله يروح لأقرب محطة مترو ويسأل هناك.
اكتب الرد كنص فقط بدون رموز غريبة.`

// BuildPrompt renders the fixed advice prompt for an origin/destination
// pair.
func BuildPrompt(fromLoc, toLoc string) string {
	return fmt.Sprintf(promptTemplate, fromLoc, toLoc)
}

// Chain tries an ordered list of primary providers, then one last-resort
// provider from a different vendor. Per-provider failures (network,
// provider error, empty reply) are logged and absorbed; the chain moves on.
type Chain struct {
	primary    []Provider
	lastResort Provider // may be nil
	timeout    time.Duration
}

func NewChain(primary []Provider, lastResort Provider, perCallTimeout time.Duration) *Chain {
	if perCallTimeout <= 0 {
		perCallTimeout = 30 * time.Second
	}
	return &Chain{primary: primary, lastResort: lastResort, timeout: perCallTimeout}
}

// DefaultChain wires the standard provider lineup: the Gemini priority
// list, then Groq as the last resort. A missing key leaves that vendor out
// instead of failing.
func DefaultChain(googleKey, groqKey string, perCallTimeout time.Duration) *Chain {
	var primary []Provider
	if googleKey != "" {
		for _, model := range GeminiModelPriority {
			primary = append(primary, NewGeminiProvider("", googleKey, model))
		}
	}
	var last Provider
	if groqKey != "" {
		last = NewGroqProvider("", groqKey, "")
	}
	return NewChain(primary, last, perCallTimeout)
}

func (c *Chain) tryOne(ctx context.Context, p Provider, prompt string) (string, error) {
	// Each call carries its own deadline so one hung provider can't stall
	// the whole chain.
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return p.Generate(cctx, prompt)
}

// Advise asks the chain for directions from fromLoc to toLoc. The first
// provider returning non-empty text wins and no later provider is tried.
// When everything fails the fixed apology comes back instead of an error.
func (c *Chain) Advise(ctx context.Context, fromLoc, toLoc string) string {
	prompt := BuildPrompt(fromLoc, toLoc)

	for _, p := range c.primary {
		text, err := c.tryOne(ctx, p, prompt)
		if err != nil {
			logrus.WithError(err).WithField("provider", p.Name()).Warn("ai: provider failed, trying next")
			continue
		}
		if strings.TrimSpace(text) == "" {
			logrus.WithField("provider", p.Name()).Warn("ai: provider returned empty text, trying next")
			continue
		}
		return text
	}

	if c.lastResort != nil {
		logrus.Info("ai: all primary models failed, switching to last resort")
		text, err := c.tryOne(ctx, c.lastResort, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			logrus.WithError(err).WithField("provider", c.lastResort.Name()).Error("ai: last resort failed")
		}
	}

	return Apology
}
