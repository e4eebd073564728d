// Package profiling writes pprof profiles requested on the command line.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

var log logrus.FieldLogger = logrus.StandardLogger()

func SetLogger(l logrus.FieldLogger) {
	log = l
}

// DoCPUProfiling starts CPU profiling into fileName. The returned func stops it.
// Failures are logged and profiling is skipped.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		log.WithError(err).WithField("file", fileName).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Error("could not start CPU profile")
		closeFile(f, fileName)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f, fileName)
	}
}

// DoMemProfiling returns a func that writes a heap profile to fileName when called.
func DoMemProfiling(fileName string) (write func()) {
	return func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.WithError(err).WithField("file", fileName).Error("could not create memory profile")
			return
		}
		defer closeFile(f, fileName)
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.WithError(err).Error("could not write memory profile")
		}
	}
}

func closeFile(c io.Closer, fileName string) {
	if err := c.Close(); err != nil {
		log.WithError(err).WithField("file", fileName).Warn("failed to close profile")
	}
}
