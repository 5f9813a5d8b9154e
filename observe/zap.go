package observe

import (
	"github.com/on-the-ground/memo_ive_go/pure"
	"go.uber.org/zap"
)

// Field names used by ZapObserver.
const (
	FieldEvaluatorID = "evaluator_id"
	FieldEvaluator   = "evaluator"
	FieldKey         = "key"
	FieldDuration    = "duration"
)

var _ pure.Observer = ZapObserver{}

// ZapObserver logs hits and computations at debug level and failures at warn level.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver wraps logger. A nil logger discards everything.
func NewZapObserver(logger *zap.Logger) ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ZapObserver{logger: logger}
}

func (z ZapObserver) Hit(e pure.Event) {
	z.logger.Debug("memo hit", baseFields(e)...)
}

func (z ZapObserver) Computed(e pure.Event) {
	z.logger.Debug("memo computed", append(baseFields(e), zap.Duration(FieldDuration, e.Span.Duration()))...)
}

func (z ZapObserver) Failed(e pure.Event) {
	z.logger.Warn("memo computation failed", append(baseFields(e),
		zap.Duration(FieldDuration, e.Span.Duration()),
		zap.Error(e.Err),
	)...)
}

func baseFields(e pure.Event) []zap.Field {
	return []zap.Field{
		zap.Stringer(FieldEvaluatorID, e.EvaluatorID),
		zap.String(FieldEvaluator, e.Name),
		zap.Any(FieldKey, e.Key),
	}
}
