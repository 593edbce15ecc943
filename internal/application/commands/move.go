package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// MoveResult contains the result of a move
type MoveResult struct {
	Key       domain.Key
	Move      domain.Move
	Outline   *domain.Outline
	Unchanged bool
	Message   string
}

// MoveCommand drops one item before, after or into another, as a single
// drag gesture would.
type MoveCommand struct {
	repo      ports.ListRepository
	log       logrus.FieldLogger
	List      string
	SourceKey string
	TargetKey string
	Mode      domain.InsertionMode
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(repo ports.ListRepository, list, sourceKey, targetKey string, mode domain.InsertionMode) *MoveCommand {
	return &MoveCommand{
		repo:      repo,
		log:       logrus.StandardLogger(),
		List:      list,
		SourceKey: sourceKey,
		TargetKey: targetKey,
		Mode:      mode,
	}
}

// WithLogger sets the logger used for resolution traces
func (c *MoveCommand) WithLogger(log logrus.FieldLogger) *MoveCommand {
	if log != nil {
		c.log = log
	}
	return c
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	if err := application.ValidateKey("sourceKey", c.SourceKey); err != nil {
		return err
	}
	if err := application.ValidateKey("targetKey", c.TargetKey); err != nil {
		return err
	}
	if !c.Mode.Valid() {
		return &application.ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown insertion mode %d", int(c.Mode)),
		}
	}
	if c.SourceKey == c.TargetKey {
		return &application.MoveError{
			SourceID: c.SourceKey,
			DestID:   c.TargetKey,
			Reason:   "cannot drop an item onto itself",
			Err:      application.ErrInvalidOperation,
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}

	moved, src, err := outline.Lookup(domain.Key(c.SourceKey))
	if err != nil {
		return nil, c.moveError("source not found", err)
	}
	target, ok := outline.Find(domain.Key(c.TargetKey))
	if !ok {
		return nil, c.moveError("target not found", domain.ErrNotFound)
	}

	var m domain.Machine
	events := []domain.Event{
		domain.DragStarted{Source: src, Key: moved.Key, HasChildren: moved.HasChildren()},
		domain.HoverChanged{Target: target, Mode: c.Mode},
		domain.Dropped{},
	}
	var drop *domain.Drop
	for _, ev := range events {
		if drop, err = m.Handle(ev); err != nil {
			return nil, err
		}
	}
	if drop == nil {
		return nil, c.moveError(notEligibleReason(moved, c.Mode), application.ErrNotEligible)
	}

	return applyDrop(ctx, c.repo, c.log, outline, *drop, c.TargetKey)
}

func (c *MoveCommand) moveError(reason string, err error) error {
	return &application.MoveError{
		SourceID: c.SourceKey,
		DestID:   c.TargetKey,
		Reason:   reason,
		Err:      err,
	}
}

// DropCommand commits a drop produced by an interactive drag session
type DropCommand struct {
	repo ports.ListRepository
	log  logrus.FieldLogger
	List string
	Drop domain.Drop
}

// NewDropCommand creates a new DropCommand
func NewDropCommand(repo ports.ListRepository, list string, drop domain.Drop) *DropCommand {
	return &DropCommand{
		repo: repo,
		log:  logrus.StandardLogger(),
		List: list,
		Drop: drop,
	}
}

// WithLogger sets the logger used for resolution traces
func (c *DropCommand) WithLogger(log logrus.FieldLogger) *DropCommand {
	if log != nil {
		c.log = log
	}
	return c
}

// Execute resolves and applies the drop. The drop's snapshots must still
// describe the stored list, otherwise the list changed under the gesture.
func (c *DropCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := application.ValidateListName(c.List); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}

	current, err := outline.Get(c.Drop.Source)
	if err != nil || current.Key != c.Drop.Key {
		return nil, &application.MoveError{
			SourceID: string(c.Drop.Key),
			DestID:   c.List,
			Reason:   "list changed during drag",
			Err:      application.ErrInvalidOperation,
		}
	}

	targetKey := ""
	if target, err := outline.Get(c.Drop.Target); err == nil {
		targetKey = string(target.Key)
	}
	if targetKey == string(c.Drop.Key) {
		return &MoveResult{
			Key:       c.Drop.Key,
			Outline:   outline,
			Unchanged: true,
			Message:   "Nothing to move",
		}, nil
	}

	return applyDrop(ctx, c.repo, c.log, outline, c.Drop, targetKey)
}

func applyDrop(ctx context.Context, repo ports.ListRepository, log logrus.FieldLogger, outline *domain.Outline, drop domain.Drop, targetKey string) (*MoveResult, error) {
	if res := CheckDropEligibility(outline, drop.Key, drop.Target, drop.Mode); !res.CanDrop {
		return nil, &application.MoveError{
			SourceID: string(drop.Key),
			DestID:   targetKey,
			Reason:   res.Reason,
			Err:      application.ErrNotEligible,
		}
	}

	move, err := drop.Resolve(outline.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve drop: %w", err)
	}

	log.WithFields(logrus.Fields{
		"list":        outline.Name,
		"key":         drop.Key,
		"mode":        drop.Mode.String(),
		"src_parent":  move.Source.ParentIndex,
		"src_index":   move.Source.Index,
		"dest_parent": move.Destination.ParentIndex,
		"dest_index":  move.Destination.Index,
	}).Debug("resolved drop")

	if err := outline.Apply(move); err != nil {
		reason := err.Error()
		if errors.Is(err, domain.ErrNestingTooDeep) {
			reason = "items with children cannot be nested"
		}
		return nil, &application.MoveError{
			SourceID: string(drop.Key),
			DestID:   targetKey,
			Reason:   reason,
			Err:      err,
		}
	}

	if err := repo.Save(ctx, outline); err != nil {
		return nil, fmt.Errorf("failed to save list %s: %w", outline.Name, err)
	}

	return &MoveResult{
		Key:     drop.Key,
		Move:    move,
		Outline: outline,
		Message: fmt.Sprintf("Moved %s %s %s", drop.Key, drop.Mode, targetKey),
	}, nil
}

// DropEligibility contains the result of checking a candidate drop
type DropEligibility struct {
	CanDrop bool
	Reason  string
}

// CheckDropEligibility evaluates the drop rules for dragging key onto target
// with mode. On top of the nesting rules of domain.CanAccept, a child drop
// needs a top-level target other than the item itself that holds no other
// children.
func CheckDropEligibility(outline *domain.Outline, key domain.Key, target domain.Ref, mode domain.InsertionMode) DropEligibility {
	item, _, err := outline.Lookup(key)
	if err != nil {
		return DropEligibility{Reason: err.Error()}
	}
	if !domain.CanAccept(target.Level(), mode, item.HasChildren()) {
		return DropEligibility{Reason: notEligibleReason(item, mode)}
	}
	if mode != domain.ModeChild {
		return DropEligibility{CanDrop: true}
	}

	// Nesting stops at level 1, so only top-level items can take children.
	if !target.TopLevel() {
		return DropEligibility{Reason: "only top-level items can take children"}
	}
	parent, err := outline.Get(target)
	if err != nil {
		return DropEligibility{Reason: err.Error()}
	}
	if parent.Key == key {
		return DropEligibility{Reason: fmt.Sprintf("%s cannot become its own child", key)}
	}
	for _, ch := range parent.Children {
		if ch.Key != key {
			return DropEligibility{Reason: fmt.Sprintf("%s already has children, drop before its first child", parent.Key)}
		}
	}
	return DropEligibility{CanDrop: true}
}

func notEligibleReason(item domain.Item, mode domain.InsertionMode) string {
	if mode == domain.ModeChild {
		return fmt.Sprintf("%s has children and cannot become a child", item.Key)
	}
	return fmt.Sprintf("%s has children and cannot be placed among children", item.Key)
}

// CheckDropCommand reports whether a drop would be accepted, without moving anything
type CheckDropCommand struct {
	repo      ports.ListRepository
	List      string
	SourceKey string
	TargetKey string
	Mode      domain.InsertionMode
}

// NewCheckDropCommand creates a new CheckDropCommand
func NewCheckDropCommand(repo ports.ListRepository, list, sourceKey, targetKey string, mode domain.InsertionMode) *CheckDropCommand {
	return &CheckDropCommand{
		repo:      repo,
		List:      list,
		SourceKey: sourceKey,
		TargetKey: targetKey,
		Mode:      mode,
	}
}

// Execute runs the check
func (c *CheckDropCommand) Execute(ctx context.Context) (*DropEligibility, error) {
	if err := application.ValidateListName(c.List); err != nil {
		return nil, err
	}
	if err := application.ValidateKey("sourceKey", c.SourceKey); err != nil {
		return nil, err
	}
	if err := application.ValidateKey("targetKey", c.TargetKey); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}
	if _, _, err := outline.Lookup(domain.Key(c.SourceKey)); err != nil {
		return nil, err
	}
	target, ok := outline.Find(domain.Key(c.TargetKey))
	if !ok {
		return nil, fmt.Errorf("%w: item %s", domain.ErrNotFound, c.TargetKey)
	}

	res := CheckDropEligibility(outline, domain.Key(c.SourceKey), target, c.Mode)
	return &res, nil
}
