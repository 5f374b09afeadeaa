package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// BorderPolicy decides which frames get a border when they appear.
type BorderPolicy struct {
	Root   bool
	Splits bool
}

// ComposeLayoutUseCase drives a FrameManager the way the CLI hosts do:
// one frame has focus, splits target it, and focus follows the new frame.
type ComposeLayoutUseCase struct {
	frames   *FrameManager
	terminal port.Terminal
	policy   BorderPolicy
	focused  *entity.Frame
}

// NewComposeLayoutUseCase creates the use case over a manager built on terminal.
// The root frame starts focused and is bordered if the policy asks for it.
func NewComposeLayoutUseCase(frames *FrameManager, terminal port.Terminal, policy BorderPolicy) *ComposeLayoutUseCase {
	root := frames.Frames()[0]
	if policy.Root {
		root.AddBorder()
	}
	return &ComposeLayoutUseCase{
		frames:   frames,
		terminal: terminal,
		policy:   policy,
		focused:  root,
	}
}

// Frames returns the underlying manager.
func (uc *ComposeLayoutUseCase) Frames() *FrameManager {
	return uc.frames
}

// Focused returns the frame splits apply to.
func (uc *ComposeLayoutUseCase) Focused() *entity.Frame {
	return uc.focused
}

// FocusNext moves focus to the next frame in spatial order, wrapping around.
func (uc *ComposeLayoutUseCase) FocusNext(ctx context.Context) *entity.Frame {
	leaves := uc.frames.Tree().Leaves()
	for i, f := range leaves {
		if f == uc.focused {
			uc.focused = leaves[(i+1)%len(leaves)]
			break
		}
	}

	logging.FromContext(ctx).Debug().Str("frame_id", string(uc.focused.ID)).Msg("focus moved")
	return uc.focused
}

// Split divides the focused frame along axis and focuses the new frame.
// On error focus and layout are unchanged.
func (uc *ComposeLayoutUseCase) Split(ctx context.Context, axis entity.SplitAxis) (*entity.Frame, error) {
	var (
		added *entity.Frame
		err   error
	)
	switch axis {
	case entity.AxisVertical:
		added, err = uc.frames.SplitVertical(ctx, uc.focused)
	case entity.AxisHorizontal:
		added, err = uc.frames.SplitHorizontal(ctx, uc.focused)
	default:
		return nil, fmt.Errorf("split: unsupported axis %s", axis)
	}
	if err != nil {
		return nil, err
	}

	if uc.policy.Splits {
		added.AddBorder()
	}
	uc.focused = added
	return added, nil
}

// Apply performs each split in order, every step targeting the frame the
// previous step created. It stops at the first failure.
func (uc *ComposeLayoutUseCase) Apply(ctx context.Context, axes []entity.SplitAxis) error {
	for i, axis := range axes {
		if _, err := uc.Split(ctx, axis); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, axis, err)
		}
	}
	return nil
}

// ToggleBorder adds or removes the focused frame's border.
func (uc *ComposeLayoutUseCase) ToggleBorder() bool {
	if uc.focused.HasBorder {
		uc.focused.RemoveBorder()
	} else {
		uc.focused.AddBorder()
	}
	return uc.focused.HasBorder
}

// Reflow re-derives every frame from the split tree for the terminal's current size.
func (uc *ComposeLayoutUseCase) Reflow(ctx context.Context) error {
	rows, columns := uc.terminal.Size()
	return uc.frames.Reflow(ctx, rows, columns)
}

// Render writes the composited layout to the terminal.
func (uc *ComposeLayoutUseCase) Render(ctx context.Context) error {
	return uc.frames.Render(ctx)
}
