package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"billing_saas/internal/logger"
	"billing_saas/internal/usecase/interfaces"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

const defaultRenderTimeout = 60 * time.Second

// A4, in inches, which is what the DevTools PrintToPDF call expects.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// ErrRenderTimeout marks the engine failing to load content or serialize the
// document inside the configured budget.
var ErrRenderTimeout = errors.New("document render timed out")

// ChromiumEngine drives a headless Chromium through the DevTools protocol.
//
// Every RenderDocument call launches its own browser process and tears it
// down before returning, success or failure. Sessions are never pooled or
// shared across invocations; correctness must not depend on reuse.
//
// Supported env vars:
//   - CHROMIUM_EXECUTABLE_PATH (optional; default: chromedp's lookup)
//   - RENDER_TIMEOUT_SECONDS (default: 60)
type ChromiumEngine struct {
	execPath string
	timeout  time.Duration
	log      zerolog.Logger
}

var _ interfaces.IDocumentEngine = (*ChromiumEngine)(nil)

func NewChromiumEngine() *ChromiumEngine {
	timeout := defaultRenderTimeout
	if v := os.Getenv("RENDER_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return &ChromiumEngine{
		execPath: os.Getenv("CHROMIUM_EXECUTABLE_PATH"),
		timeout:  timeout,
		log:      logger.WithComponent("chromium-engine"),
	}
}

// RenderDocument loads the body markup as page content under print media
// emulation and serializes a paginated A4 PDF with the header and footer
// repeated on every page. The engine resolves pageNumber/totalPages
// placeholders in the header/footer markup at print time.
func (e *ChromiumEngine) RenderDocument(ctx context.Context, bodyHTML, headerHTML, footerHTML string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	started := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, bodyHTML).Do(ctx)
		}),
		emulation.SetEmulatedMedia().WithMedia("print"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(headerHTML).
				WithFooterTemplate(footerHTML).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrRenderTimeout, e.timeout)
		}
		return nil, fmt.Errorf("chromium render: %w", err)
	}

	e.log.Debug().
		Int("size_bytes", len(pdf)).
		Dur("elapsed", time.Since(started)).
		Msg("pdf serialized")
	return pdf, nil
}
