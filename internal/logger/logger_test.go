package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("warn")
	t.Cleanup(func() {
		SetLevel("INFO")
		SetOutput(os.Stdout)
	})

	Infof("não aparece")
	Warnf("aparece %d", 1)

	got := buf.String()
	if strings.Contains(got, "não aparece") {
		t.Errorf("INFO não deveria ser escrito com nível WARNING: %q", got)
	}
	if !strings.Contains(got, "aparece 1") || !strings.Contains(got, "WARNING") {
		t.Errorf("esperava linha WARNING, recebido %q", got)
	}
}

func TestSetLevelUnknownKeepsCurrent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("DEBUG")
	SetLevel("verbose")
	t.Cleanup(func() {
		SetLevel("INFO")
		SetOutput(os.Stdout)
	})

	Debugf("debug ativo")
	if !strings.Contains(buf.String(), "debug ativo") {
		t.Errorf("nível DEBUG deveria continuar ativo: %q", buf.String())
	}
}
