package components

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/reveal"
)

// StaggerStep spaces the cards of a grid.
const StaggerStep = 100 * time.Millisecond

// RevealRegion registers id with the page view's scheduler and wraps
// children in an element the reveal script animates once it scrolls into
// view. The timing travels as CSS custom properties.
func RevealRegion(s *reveal.Scheduler, id string, delay time.Duration, children ...g.Node) g.Node {
	e := s.Observe(id, delay)

	return Div(
		g.Attr("data-reveal", e.ID),
		g.Attr("style", revealStyle(e)),
		g.Group(children),
	)
}

func revealStyle(e reveal.Entry) string {
	return fmt.Sprintf("--reveal-delay:%ss;--reveal-duration:%ss;--reveal-offset:%spx;--reveal-ease:%s",
		seconds(e.Delay),
		seconds(reveal.Duration),
		strconv.FormatFloat(reveal.Offset, 'f', -1, 64),
		reveal.EaseOut.CSS(),
	)
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
