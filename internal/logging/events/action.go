package events

import "github.com/michaelangeloio/qapp/internal/logging"

type ActionTracer struct{}

type ScanTracer struct{}

var (
	Action = ActionTracer{}
	Scan   = ScanTracer{}
)

func (ActionTracer) Opened(name string) {
	logging.Trace("action.open", map[string]interface{}{"name": name})
}

func (ActionTracer) Killed(name string) {
	logging.Trace("action.kill", map[string]interface{}{"name": name})
}

func (ActionTracer) Error(verb, name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"verb": verb, "name": name, "error": err.Error()})
}

func (ActionTracer) Refreshed(count int) {
	logging.Trace("action.refresh", map[string]interface{}{"count": count})
}

func (ActionTracer) RefreshFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.refresh-failed", map[string]interface{}{"error": err.Error()})
}

func (ScanTracer) Loaded(count int) {
	logging.Trace("scan.installed", map[string]interface{}{"count": count})
}

func (ScanTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("scan.failed", map[string]interface{}{"error": err.Error()})
}
