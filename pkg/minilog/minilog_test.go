// Copyright (2012) Sandia Corporation.
// Under the terms of Contract DE-AC04-94AL85000 with Sandia Corporation,
// the U.S. Government retains certain rights in this software.

package minilog

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestFilter(t *testing.T) {
	sink1 := new(bytes.Buffer)

	AddLogger("sink1Level", sink1, DEBUG, false)
	defer DelLogger("sink1Level")

	testString := "test 123"
	testString2 := "test 456"

	Debug(testString)

	s1 := sink1.String()

	if !strings.Contains(s1, testString) {
		t.Fatal("sink1 got:", s1)
	}

	AddFilter("sink1Level", "minilog_test")

	Debug(testString2)

	s1 = sink1.String()

	if strings.Contains(s1, testString2) {
		t.Fatal("sink1 got:", s1)
	}

	DelFilter("sink1Level", "minilog_test")

	Debug(testString2)

	s1 = sink1.String()

	if !strings.Contains(s1, testString2) {
		t.Fatal("sink1 got:", s1)
	}
}

func TestMultilog(t *testing.T) {
	sink1 := new(bytes.Buffer)
	sink2 := new(bytes.Buffer)

	AddLogger("sink1", sink1, DEBUG, false)
	AddLogger("sink2", sink2, DEBUG, false)
	defer DelLogger("sink1")
	defer DelLogger("sink2")

	testString := "test 123"

	Debug(testString)

	s1 := sink1.String()
	s2 := sink2.String()

	if !strings.Contains(s1, testString) {
		t.Fatal("sink1 got:", s1)
	}

	if !strings.Contains(s2, testString) {
		t.Fatal("sink2 got:", s2)
	}
}

func TestLogLevels(t *testing.T) {
	sink1 := new(bytes.Buffer)
	sink2 := new(bytes.Buffer)

	AddLogger("sink1Level", sink1, DEBUG, false)
	AddLogger("sink2Level", sink2, INFO, false)
	defer DelLogger("sink1Level")
	defer DelLogger("sink2Level")

	testString := "test 123"

	Debug(testString)

	s1 := sink1.String()
	s2 := sink2.String()

	if !strings.Contains(s1, testString) {
		t.Fatal("sink1 got:", s1)
	}

	if len(s2) != 0 {
		t.Fatal("sink2 got:", s2)
	}
}

func TestDelLogger(t *testing.T) {
	sink := new(bytes.Buffer)

	AddLogger("sinkDel", sink, DEBUG, false)

	testString := "test 123"
	testString2 := "test 456"

	Debug(testString)

	s, err := sink.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(s, testString) {
		t.Fatal("sink got:", s)
	}

	DelLogger("sinkDel")

	Debug(testString2)

	s, err = sink.ReadString('\n')
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}

	if len(s) != 0 {
		t.Fatal("sink got:", s)
	}
}

func TestFields(t *testing.T) {
	sink := new(bytes.Buffer)

	AddLogger("sinkFields", sink, DEBUG, false)
	defer DelLogger("sinkFields")

	Info("accepted connection", "remote", "127.0.0.1:5555", "session", 7)

	s := sink.String()
	if !strings.Contains(s, "remote=127.0.0.1:5555") || !strings.Contains(s, "session=7") {
		t.Fatal("sink got:", s)
	}
}

func BenchmarkLogging(b *testing.B) {
	null, err := os.Create(os.DevNull)
	if err != nil {
		b.Fatal(err)
	}

	AddLogger("null", null, DEBUG, false)
	defer DelLogger("null")

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			for j := 0; j < b.N; j++ {
				Debug("message", "worker", i, "iter", j)
			}
		}(i)
	}

	wg.Wait()
}
