package loader

// Base holds the state every loader exposes. Generated loaders embed it.
type Base struct {
	root       any
	controller any
	namespace  Namespace[any]
}

// Root implements [Loader].
func (b *Base) Root() any { return b.root }

// Controller implements [Loader].
func (b *Base) Controller() any { return b.controller }

// Namespace implements [Loader].
func (b *Base) Namespace() *Namespace[any] { return &b.namespace }

// SetRoot sets the externally supplied root instance used by documents whose
// root element is a root wrapper.
func (b *Base) SetRoot(root any) { b.root = root }

// SetController sets the controller.
func (b *Base) SetController(controller any) { b.controller = controller }

// BuildFunc builds the object tree of a document and returns its root.
type BuildFunc func(b *Base, ctx *Context) (any, error)

// InitFunc initializes a controller once the tree is built.
type InitFunc func(b *Base, controller any) error

type funcLoader struct {
	Base

	build         BuildFunc
	newController func() any
	initialize    InitFunc
}

// New returns a factory of loaders running build, then creating a controller
// with newController and passing it to initialize. Either of newController
// and initialize may be nil.
func New(build BuildFunc, newController func() any, initialize InitFunc) Factory {
	return func() Loader {
		return &funcLoader{build: build, newController: newController, initialize: initialize}
	}
}

func (l *funcLoader) Load(ctx *Context) (any, error) {
	root, err := l.build(&l.Base, ctx)
	if err != nil {
		return nil, err
	}

	if l.root == nil {
		l.root = root
	}

	if l.newController == nil {
		return root, nil
	}

	l.controller = l.newController()

	if l.initialize != nil {
		if err := l.initialize(&l.Base, l.controller); err != nil {
			return nil, err
		}
	}

	return root, nil
}
