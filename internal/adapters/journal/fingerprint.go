package journal

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mk/internal/core/domain"
)

// Fingerprint returns a stable hash of the ordered steps.
// Two targets have the same fingerprint only if they would run the same commands in the same order.
func Fingerprint(steps []domain.Step) string {
	hasher := xxhash.New()

	for _, step := range steps {
		_, _ = hasher.WriteString(step.Kind.String())
		_, _ = hasher.Write([]byte{0}) // Separator

		switch step.Kind {
		case domain.StepExec:
			_, _ = hasher.WriteString(step.Program)
			_, _ = hasher.Write([]byte{0})
			for _, arg := range step.Args {
				_, _ = hasher.WriteString(arg)
				_, _ = hasher.Write([]byte{0})
			}
			_, _ = hasher.WriteString(step.Dir)
		case domain.StepRemove:
			_, _ = hasher.WriteString(step.Path)
		}

		_, _ = hasher.Write([]byte{1}) // Step separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
