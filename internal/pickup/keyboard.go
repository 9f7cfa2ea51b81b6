package pickup

import "sync"

const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Keyboard общая поверхность ввода. Слушатель всегда один: новый Attach заменяет
// предыдущего, а release устаревшего владельца ничего не делает.
type Keyboard struct {
	mu       sync.Mutex
	owner    uint64
	listener func(code string) error
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Attach(listener func(code string) error) (release func()) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.owner++
	token := k.owner
	k.listener = listener

	return func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if k.owner == token {
			k.listener = nil
		}
	}
}

// Dispatch передает код клавиши текущему слушателю. handled == false, если слушателя нет.
func (k *Keyboard) Dispatch(code string) (handled bool, err error) {
	k.mu.Lock()
	listener := k.listener
	k.mu.Unlock()

	if listener == nil {
		return false, nil
	}
	return true, listener(code)
}

func (k *Keyboard) Attached() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.listener != nil
}
