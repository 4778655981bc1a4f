package logging

import (
	"github.com/sirupsen/logrus"
)

// Run executes fn and logs "<kind>.<name>.Start", then ".Complete" or
// ".Error" with the data and timings fn recorded.
func Run(kind, name string, log logrus.FieldLogger, fn func(*LogData) error) error {
	logData := NewLogData(log)

	log.Infof("%s.%v.Start", kind, name)

	endTimer := logData.AddTiming("duration")
	err := fn(logData)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Errorf("%s.%v.Error", kind, name)
		return err
	}

	logData.Log().Infof("%s.%v.Complete", kind, name)
	return nil
}
