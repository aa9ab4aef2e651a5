package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shirhatti/cad/cmd/cad/commands"
	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/adapters/telemetry"
	"github.com/shirhatti/cad/internal/app"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestCLI(t *testing.T) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockModelFinder) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	finder := mocks.NewMockModelFinder(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockArtifactStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(loader, finder, hasher, store, logger, telemetry.NewNoOp(), shell.NewRunner(logger))
	return commands.New(a), loader, finder
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func testSettings(t *testing.T) *domain.Settings {
	t.Helper()
	return &domain.Settings{
		BasePath:  t.TempDir(),
		OutputDir: t.TempDir(),
	}
}

func TestVersionCommand(t *testing.T) {
	cli, _, _ := newTestCLI(t)

	out, err := execute(t, cli, "version")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(out, "cad version ") {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand(t *testing.T) {
	cli, loader, finder := newTestCLI(t)

	loader.EXPECT().Load("").Return(testSettings(t), nil)
	finder.EXPECT().Find(gomock.Any(), domain.ModelFilter{}).Return([]domain.Model{
		domain.NewModel("desk/tray.scad"),
		domain.NewModel("rack/bracket.scad"),
	}, nil)

	out, err := execute(t, cli, "list")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "desk/tray.scad\nrack/bracket.scad\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_TestsOnly(t *testing.T) {
	cli, loader, finder := newTestCLI(t)

	loader.EXPECT().Load("").Return(testSettings(t), nil)
	finder.EXPECT().Find(gomock.Any(), domain.ModelFilter{OnlyTests: true}).Return([]domain.Model{
		domain.NewModel("rack/bracket_test.scad"),
	}, nil)

	out, err := execute(t, cli, "list", "--tests")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "rack/bracket_test.scad\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_OutputNames(t *testing.T) {
	cli, loader, finder := newTestCLI(t)

	loader.EXPECT().Load("").Return(testSettings(t), nil)
	finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]domain.Model{
		domain.NewModel("rack/bracket.scad"),
	}, nil)

	out, err := execute(t, cli, "list", "--output-names")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "rack__bracket\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_SelectsByName(t *testing.T) {
	cli, loader, finder := newTestCLI(t)

	loader.EXPECT().Load("").Return(testSettings(t), nil)
	finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]domain.Model{
		domain.NewModel("desk/tray.scad"),
		domain.NewModel("rack/bracket.scad"),
	}, nil)

	out, err := execute(t, cli, "list", "rack__bracket")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "rack/bracket.scad\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_UnknownModel(t *testing.T) {
	cli, loader, finder := newTestCLI(t)

	loader.EXPECT().Load("").Return(testSettings(t), nil)
	finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]domain.Model{
		domain.NewModel("rack/bracket.scad"),
	}, nil)

	_, err := execute(t, cli, "list", "no_such_model")
	if err == nil {
		t.Fatal("expected an error for an unknown model")
	}
}

func TestUnknownCommand(t *testing.T) {
	cli, _, _ := newTestCLI(t)
	if _, err := execute(t, cli, "frobnicate"); err == nil {
		t.Error("expected an error for an unknown subcommand")
	}
}
