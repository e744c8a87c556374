package console

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification - короткое сообщение пользователю после действия или ошибки
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Notifier доставляет уведомления на поверхность (терминал, веб-страница)
type Notifier interface {
	Notify(n Notification)
}

func success(description string) Notification {
	return Notification{Title: "Успешно", Description: description, Variant: VariantDefault}
}

func failure(description string) Notification {
	return Notification{Title: "Ошибка", Description: description, Variant: VariantDestructive}
}

// Recorder накапливает уведомления до следующего чтения
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Drain возвращает накопленные уведомления и очищает список
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items
	r.items = nil
	return items
}

// Last возвращает последнее уведомление без очистки
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// TerminalNotifier печатает уведомления в терминал цветом
type TerminalNotifier struct {
	out  io.Writer
	ok   *color.Color
	fail *color.Color
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{
		out:  out,
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
}

func (t *TerminalNotifier) Notify(n Notification) {
	c := t.ok
	mark := "✓"
	if n.Variant == VariantDestructive {
		c = t.fail
		mark = "✗"
	}
	c.Fprintf(t.out, "%s %s: ", mark, n.Title)
	io.WriteString(t.out, n.Description+"\n")
}
