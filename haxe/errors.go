package haxe

import (
	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("externgen.haxe")

var (
	ErrDuplicateClass     = errors.New("duplicate class")
	ErrDuplicateMember    = errors.New("duplicate member")
	ErrNameCollision      = errors.New("member name collision")
	ErrNotAMethod         = errors.New("current member is not a method")
	ErrTypeAlreadySet     = errors.New("type already set")
	ErrEmptyType          = errors.New("type cannot be empty")
	ErrConflictingComment = errors.New("conflicting comment")
	ErrNoCurrentClass     = errors.New("no current class")
	ErrNoCurrentMember    = errors.New("no current member")
	ErrNoCommentTarget    = errors.New("no commentable target")
	ErrUnclosedClass      = errors.New("class left open")
)
