package commands

import (
	"context"
	"errors"
	"testing"

	"nestlist/internal/application"
	"nestlist/internal/domain"
)

func TestMoveCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		list      string
		sourceKey string
		targetKey string
		mode      domain.InsertionMode
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid move",
			list:      "groceries",
			sourceKey: "milk",
			targetKey: "bread",
			mode:      domain.ModeAfter,
		},
		{
			name:      "empty source key",
			list:      "groceries",
			targetKey: "bread",
			wantErr:   true,
			errMsg:    "source key is required",
		},
		{
			name:      "empty target key",
			list:      "groceries",
			sourceKey: "milk",
			wantErr:   true,
			errMsg:    "target key is required",
		},
		{
			name:      "missing list",
			sourceKey: "milk",
			targetKey: "bread",
			wantErr:   true,
			errMsg:    "list name is required",
		},
		{
			name:      "unknown mode",
			list:      "groceries",
			sourceKey: "milk",
			targetKey: "bread",
			mode:      domain.InsertionMode(7),
			wantErr:   true,
			errMsg:    "unknown insertion mode",
		},
		{
			name:      "onto itself",
			list:      "groceries",
			sourceKey: "milk",
			targetKey: "milk",
			wantErr:   true,
			errMsg:    "cannot drop an item onto itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveCommand{
				List:      tt.list,
				SourceKey: tt.sourceKey,
				TargetKey: tt.targetKey,
				Mode:      tt.mode,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMoveCommand_Execute(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		mode   domain.InsertionMode
		want   string
	}{
		{"top level forward", "milk", "bread", domain.ModeAfter, "fruit[apples pears] bread milk veg[leeks]"},
		{"top level backward", "bread", "milk", domain.ModeBefore, "bread milk fruit[apples pears] veg[leeks]"},
		{"into other parent", "pears", "leeks", domain.ModeBefore, "milk fruit[apples] bread veg[pears leeks]"},
		{"leaf becomes child", "milk", "bread", domain.ModeChild, "fruit[apples pears] bread[milk] veg[leeks]"},
		{"child to top level", "apples", "milk", domain.ModeBefore, "apples milk fruit[pears] bread veg[leeks]"},
		{"parent reordered", "veg", "milk", domain.ModeBefore, "veg[leeks] milk fruit[apples pears] bread"},
		{"only child back into its parent", "leeks", "veg", domain.ModeChild, "milk fruit[apples pears] bread veg[leeks]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(groceries())
			cmd := NewMoveCommand(repo, "groceries", tt.source, tt.target, tt.mode)

			result, err := cmd.Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := repo.shape("groceries"); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
			if result.Key != domain.Key(tt.source) || result.Message == "" {
				t.Errorf("unexpected result %+v", result)
			}
		})
	}
}

func TestMoveCommand_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		mode    domain.InsertionMode
		wantErr error
	}{
		{"parent as child", "fruit", "milk", domain.ModeChild, application.ErrNotEligible},
		{"parent among children", "fruit", "leeks", domain.ModeAfter, application.ErrNotEligible},
		{"child target for child mode", "milk", "apples", domain.ModeChild, application.ErrNotEligible},
		{"child mode onto parent", "milk", "fruit", domain.ModeChild, application.ErrNotEligible},
		{"unknown source", "cheese", "milk", domain.ModeAfter, domain.ErrNotFound},
		{"unknown target", "milk", "cheese", domain.ModeAfter, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(groceries())
			before := repo.shape("groceries")

			_, err := NewMoveCommand(repo, "groceries", tt.source, tt.target, tt.mode).Execute(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var moveErr *application.MoveError
			if !errors.As(err, &moveErr) {
				t.Errorf("expected MoveError, got %T", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.saves != 0 || repo.shape("groceries") != before {
				t.Errorf("list changed on rejected move")
			}
		})
	}
}

func TestDropCommand_Execute(t *testing.T) {
	repo := newMemRepo(groceries())

	var m domain.Machine
	m.Handle(domain.DragStarted{Source: domain.Ref{Parent: "fruit", Index: 0}, Key: "apples"})
	m.Handle(domain.HoverChanged{Target: domain.Ref{Index: 2}, Mode: domain.ModeAfter})
	drop, err := m.Handle(domain.Dropped{})
	if err != nil || drop == nil {
		t.Fatalf("expected a drop, got %v, %v", drop, err)
	}

	result, err := NewDropCommand(repo, "groceries", *drop).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := repo.shape("groceries"), "milk fruit[pears] bread apples veg[leeks]"; got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if result.Move.Destination.Index != 3 {
		t.Errorf("destination index = %d, want 3", result.Move.Destination.Index)
	}
}

func TestDropCommand_StaleSnapshot(t *testing.T) {
	repo := newMemRepo(groceries())
	drop := domain.Drop{Key: "milk", Source: domain.Ref{Index: 2}, Target: domain.Ref{Index: 0}, Mode: domain.ModeBefore}

	_, err := NewDropCommand(repo, "groceries", drop).Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestDropCommand_OntoItself(t *testing.T) {
	repo := newMemRepo(groceries())
	drop := domain.Drop{Key: "bread", Source: domain.Ref{Index: 2}, Target: domain.Ref{Index: 2}, Mode: domain.ModeAfter}

	result, err := NewDropCommand(repo, "groceries", drop).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Unchanged || repo.saves != 0 {
		t.Errorf("expected an unchanged result without saving, got %+v", result)
	}
}

func TestCheckDropCommand(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		mode    domain.InsertionMode
		canDrop bool
		reason  string
	}{
		{"parent as child", "fruit", "milk", domain.ModeChild, false, "cannot become a child"},
		{"parent at top level", "fruit", "milk", domain.ModeBefore, true, ""},
		{"leaf as child of leaf", "milk", "bread", domain.ModeChild, true, ""},
		{"leaf as child of child", "milk", "apples", domain.ModeChild, false, "only top-level items"},
		{"leaf as child of parent", "milk", "fruit", domain.ModeChild, false, "already has children"},
		{"only child into its parent", "leeks", "veg", domain.ModeChild, true, ""},
		{"leaf beside child", "milk", "apples", domain.ModeAfter, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(groceries())
			ctx := context.Background()

			res, err := NewCheckDropCommand(repo, "groceries", tt.source, tt.target, tt.mode).Execute(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if res.CanDrop != tt.canDrop || !contains(res.Reason, tt.reason) {
				t.Errorf("eligibility = %+v, want canDrop %v with %q", res, tt.canDrop, tt.reason)
			}

			// A drop the check allows must go through, and one it refuses must not.
			_, err = NewMoveCommand(repo, "groceries", tt.source, tt.target, tt.mode).Execute(ctx)
			if (err == nil) != tt.canDrop {
				t.Errorf("move error = %v, check said canDrop %v", err, tt.canDrop)
			}
		})
	}
}

func TestCheckDropEligibility_SelfAsChild(t *testing.T) {
	o := groceries()
	res := CheckDropEligibility(o, "milk", domain.Ref{Index: 0}, domain.ModeChild)
	if res.CanDrop || !contains(res.Reason, "its own child") {
		t.Errorf("unexpected eligibility %+v", res)
	}
}
