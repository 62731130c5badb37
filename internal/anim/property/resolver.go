// internal/anim/property/resolver.go
package property

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/anim/transform"
)

// Resolver binds the classifier, origin reader and writers to one style host
// and logs what they decide.
type Resolver struct {
	host   StyleSource
	logger *zap.Logger
}

// NewResolver creates a resolver. host may be nil for documents without a
// style engine; logger may be nil.
func NewResolver(host StyleSource, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{host: host, logger: logger.Named("property")}
}

// Classify is Classify with this resolver's host.
func (r *Resolver) Classify(t *Target, prop string) Mechanism {
	m := Classify(r.host, t, prop)
	r.logger.Debug("Classified property.",
		zap.String("property", prop),
		zap.Stringer("target_kind", t.Kind()),
		zap.Stringer("mechanism", m),
	)
	return m
}

// Origin is OriginValue with this resolver's host.
func (r *Resolver) Origin(t *Target, prop string, m Mechanism) any {
	return OriginValue(r.host, t, prop, m)
}

// Write is SetProgressValue. A transform write without a map still lands,
// but sibling transform functions may be lost, so it is logged.
func (r *Resolver) Write(m Mechanism, t *Target, prop string, value any, tm *transform.Map) {
	if m == MechanismTransform && tm == nil {
		r.logger.Warn("Transform write without a shared map; re-parsing the element transform.",
			zap.String("property", prop))
	}
	SetProgressValue(m, t, prop, value, tm)
}
