package scene

// Selector picks the scene the driver activates next.
//
// Scenes that take part in keyed transitions hold a Selector. It is a
// non-owning handle back to the manager that owns them; under a linear
// manager it is nil and scenes simply exit.
type Selector interface {
	SetNext(key int) error
}
