//go:build unit

package rcfile

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/issue-watcher/pkg/fs"
	"github.com/lerenn/issue-watcher/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const script = "/repo/test.sh"

func newTestGenerator(t *testing.T) (*Generator, *mocks.MockFS) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fsMock := mocks.NewMockFS(ctrl)
	return NewGenerator(NewGeneratorParams{FS: fsMock, Script: script}), fsMock
}

func TestNewGenerator_DefaultRCFile(t *testing.T) {
	generator, _ := newTestGenerator(t)
	assert.Equal(t, "/repo/.testrc", generator.RCFile())
}

func TestGenerator_CheckScript(t *testing.T) {
	generator, fsMock := newTestGenerator(t)

	fsMock.EXPECT().Exists(script).Return(true, nil)
	assert.NoError(t, generator.CheckScript())

	fsMock.EXPECT().Exists(script).Return(false, nil)
	err := generator.CheckScript()
	assert.ErrorIs(t, err, ErrScriptNotFound)
	assert.Contains(t, err.Error(), script)
}

func TestGenerator_Generate(t *testing.T) {
	generator, fsMock := newTestGenerator(t)

	fsMock.EXPECT().Exists(script).Return(true, nil)
	fsMock.EXPECT().RunCommand(gomock.Any(), "/repo", "bash", script, GenerateFlag).Return(nil, nil)

	assert.NoError(t, generator.Generate(context.Background()))
}

func TestGenerator_Generate_NonZeroExit(t *testing.T) {
	generator, fsMock := newTestGenerator(t)

	fsMock.EXPECT().Exists(script).Return(true, nil)
	fsMock.EXPECT().RunCommand(gomock.Any(), "/repo", "bash", script, GenerateFlag).
		Return([]byte("oops"), fs.ErrCommandFailed)

	err := generator.Generate(context.Background())
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, fs.ErrCommandFailed)
}

func TestGenerator_Validate(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		offsetKey string
	}{
		{
			name:    "well formed",
			content: "# Uncomment only lines you need to change.\n#USE_SAFETY=true\n#TODOS_LIMIT_PER_PERSON=10\n",
		},
		{
			name:    "without trailing newline",
			content: "# Uncomment only lines you need to change.\n#TODOS_LIMIT_PER_PERSON=10",
		},
		{
			name:      "wrong first line",
			content:   "#!/bin/bash\n#TODOS_LIMIT_PER_PERSON=10\n",
			offsetKey: "start",
		},
		{
			name:      "wrong last line",
			content:   "# Uncomment only lines you need to change.\n#TODOS_LIMIT_PER_PERSON=10\n#EXTRA=1\n",
			offsetKey: "end",
		},
		{
			name:      "empty file",
			content:   "",
			offsetKey: "start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, fsMock := newTestGenerator(t)
			fsMock.EXPECT().ReadFile("/repo/.testrc").Return([]byte(tt.content), nil)

			err := generator.Validate(DefaultShape())
			if tt.offsetKey == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), "'"+tt.offsetKey+"' offset")
			assert.Contains(t, err.Error(), script)
		})
	}
}

func TestGenerator_Validate_MissingFile(t *testing.T) {
	generator, fsMock := newTestGenerator(t)
	fsMock.EXPECT().ReadFile("/repo/.testrc").Return(nil, errors.New("no such file"))

	assert.ErrorIs(t, generator.Validate(DefaultShape()), ErrMalformed)
}

func TestGenerator_Verify_CleansUp(t *testing.T) {
	generator, fsMock := newTestGenerator(t)

	gomock.InOrder(
		fsMock.EXPECT().RemoveIfExists("/repo/.testrc").Return(nil),
		fsMock.EXPECT().Exists(script).Return(true, nil),
		fsMock.EXPECT().RunCommand(gomock.Any(), "/repo", "bash", script, GenerateFlag).Return(nil, nil),
		fsMock.EXPECT().ReadFile("/repo/.testrc").Return([]byte("#!/bin/bash\n"), nil),
		fsMock.EXPECT().RemoveIfExists("/repo/.testrc").Return(nil),
	)

	assert.ErrorIs(t, generator.Verify(context.Background(), DefaultShape()), ErrMalformed)
}
