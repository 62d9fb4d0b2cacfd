package util

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// LoggingEnabled turns on debug messages from LogF.
var LoggingEnabled = false

// LogSink, when set, is a URL every message is also POSTed to.
var LogSink = ""

// stdout carries the protocol, so messages go to stderr
var logger = log.New(os.Stderr, "", log.LstdFlags)

var sinkClient = &http.Client{Timeout: 2 * time.Second}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	logMessage(fmt.Sprintf(format, args...))
}

// LogErrorF logs whether or not debug logging is enabled.
func LogErrorF(format string, args ...interface{}) {
	logMessage("error: " + fmt.Sprintf(format, args...))
}

func logMessage(message string) {
	logger.Print(message)
	if LogSink == "" {
		return
	}
	go func(sink string) {
		resp, err := sinkClient.Post(sink, "text/plain", strings.NewReader(message))
		if err == nil {
			resp.Body.Close()
		}
	}(LogSink)
}
