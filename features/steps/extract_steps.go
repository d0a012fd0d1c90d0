//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"audioleft/cmd"
	"audioleft/domain/audio"
	"audioleft/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

// recordingRunner implements ffmpeg.CommandRunner, recording ffmpeg
// invocations instead of spawning processes
type recordingRunner struct {
	name string
	args []string
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.name = name
	r.args = args
	return nil, nil
}

func (r *recordingRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	// Satisfies the VerifyInstalled pre-flight check
	return []byte("ffmpeg version 7.1"), nil
}

// mockFileChecker implements audio.FileChecker for scenarios
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool    { return m.existingFiles[path] }
func (m *mockFileChecker) IsRegular(path string) bool { return m.existingFiles[path] }

// mockDirMaker implements audio.DirMaker for scenarios
type mockDirMaker struct{}

func (m *mockDirMaker) MkdirAll(path string) error { return nil }

// extractContext holds test state for extraction scenarios
type extractContext struct {
	outputDir   string
	runner      *recordingRunner
	fileChecker *mockFileChecker
	output      *bytes.Buffer
	err         error
}

// SharedExtractContext is reset before each scenario via Before hook
var SharedExtractContext *extractContext

func getExtractContext() *extractContext {
	return SharedExtractContext
}

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedExtractContext = &extractContext{
			runner: &recordingRunner{},
			fileChecker: &mockFileChecker{
				existingFiles: make(map[string]bool),
			},
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedExtractContext = nil
		return c, nil
	})

	ctx.Step(`^the output directory is "([^"]*)"$`, theOutputDirectoryIs)
	ctx.Step(`^a video file at "([^"]*)"$`, aVideoFileAt)
	ctx.Step(`^no video file exists at "([^"]*)"$`, noVideoFileExistsAt)
	ctx.Step(`^I extract audio from "([^"]*)"$`, iExtractAudioFrom)
	ctx.Step(`^I extract audio from "([^"]*)" to "([^"]*)"$`, iExtractAudioFromTo)
	ctx.Step(`^I copy audio from "([^"]*)"$`, iCopyAudioFrom)
	ctx.Step(`^I attempt to extract audio from "([^"]*)"$`, iAttemptToExtractAudioFrom)
	ctx.Step(`^the output file should be "([^"]*)"$`, theOutputFileShouldBe)
	ctx.Step(`^ffmpeg should have been called with arguments:$`, ffmpegShouldHaveBeenCalledWithArguments)
	ctx.Step(`^ffmpeg should not have been called$`, ffmpegShouldNotHaveBeenCalled)
	ctx.Step(`^I should receive an error about a missing input file$`, iShouldReceiveAnErrorAboutAMissingInputFile)
}

func theOutputDirectoryIs(dir string) error {
	getExtractContext().outputDir = dir
	return nil
}

func aVideoFileAt(path string) error {
	getExtractContext().fileChecker.existingFiles[path] = true
	return nil
}

func noVideoFileExistsAt(path string) error {
	getExtractContext().fileChecker.existingFiles[path] = false
	return nil
}

func runExtract(inputPath, outputPath string) error {
	e := getExtractContext()
	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorCommandRunner(e.runner))
	return cmd.RunExtractWithDependencies(
		context.Background(),
		extractor,
		e.fileChecker,
		&mockDirMaker{},
		e.outputDir,
		inputPath,
		outputPath,
		e.output,
	)
}

func iExtractAudioFrom(inputPath string) error {
	return runExtract(inputPath, "")
}

func iExtractAudioFromTo(inputPath, outputPath string) error {
	return runExtract(inputPath, outputPath)
}

func iCopyAudioFrom(inputPath string) error {
	e := getExtractContext()
	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorCommandRunner(e.runner))
	return cmd.RunCopyWithDependencies(
		context.Background(),
		extractor,
		e.fileChecker,
		&mockDirMaker{},
		e.outputDir,
		inputPath,
		"",
		e.output,
	)
}

func iAttemptToExtractAudioFrom(inputPath string) error {
	getExtractContext().err = runExtract(inputPath, "")
	return nil
}

func theOutputFileShouldBe(expected string) error {
	e := getExtractContext()
	if len(e.runner.args) == 0 {
		return fmt.Errorf("ffmpeg was not called")
	}
	got := e.runner.args[len(e.runner.args)-1]
	if got != expected {
		return fmt.Errorf("output file is %q, expected %q", got, expected)
	}
	return nil
}

func ffmpegShouldHaveBeenCalledWithArguments(table *godog.Table) error {
	e := getExtractContext()

	var expected []string
	for _, row := range table.Rows {
		expected = append(expected, row.Cells[0].Value)
	}

	if len(e.runner.args) != len(expected) {
		return fmt.Errorf("ffmpeg called with %d arguments %v, expected %d %v",
			len(e.runner.args), e.runner.args, len(expected), expected)
	}
	for i := range expected {
		if e.runner.args[i] != expected[i] {
			return fmt.Errorf("argument %d is %q, expected %q", i, e.runner.args[i], expected[i])
		}
	}
	return nil
}

func ffmpegShouldNotHaveBeenCalled() error {
	e := getExtractContext()
	if len(e.runner.args) != 0 {
		return fmt.Errorf("ffmpeg was called with %v", e.runner.args)
	}
	return nil
}

func iShouldReceiveAnErrorAboutAMissingInputFile() error {
	e := getExtractContext()
	if e.err == nil {
		return fmt.Errorf("expected an error, got none")
	}
	if !errors.Is(e.err, audio.ErrInputNotFound) {
		return fmt.Errorf("expected input-not-found error, got: %v", e.err)
	}
	return nil
}
