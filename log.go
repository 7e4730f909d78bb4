// SPDX-License-Identifier: Apache-2.0

package esp

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the package-level diagnostic sink. It defaults to a
// disabled logger (matching the teacher stack's preference for quiet
// libraries) and can be replaced by the embedding application, e.g.
//
//	esp.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
var Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)

// logConstructionFailure reports a construction failure at the "ESP"
// diagnostic facet, identifying which step failed, analogous to the
// strongSwan DBG1(DBG_ESP, ...) calls in esp_context_create.
func logConstructionFailure(step string, err error) {
	Logger.Error().
		Str("facet", "ESP").
		Str("step", step).
		Err(err).
		Msg("failed to create ESP context")
}
