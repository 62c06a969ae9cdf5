// Package objctest provides an in-memory Objective-C runtime for tests.
//
// It knows the handful of Foundation and AppKit classes this module talks
// to: NSString, NSBundle, NSProcessInfo, NSApplication and
// NSAutoreleasePool. Messages to nil return nil, and unknown selectors
// panic the way the real runtime raises "unrecognized selector".
package objctest

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/mj1618/appname/internal/objc"
)

// UTF8Encoding is NSUTF8StringEncoding.
const UTF8Encoding uint = 4

var knownClasses = []string{
	"NSObject",
	"NSString",
	"NSNumber",
	"NSBundle",
	"NSProcessInfo",
	"NSApplication",
	"NSAutoreleasePool",
}

type object struct {
	class   string
	retains int
	inited  bool
	owned   bool

	// NSString contents.
	str string
}

// Call records one message send.
type Call struct {
	Receiver objc.ID
	Selector string
	Args     []any
}

// Runtime is a fake objc.Runtime. The zero value is not usable; call New.
type Runtime struct {
	mu sync.Mutex

	next     uintptr
	classes  map[string]objc.Class
	classOf  map[objc.Class]string
	sels     map[string]objc.SEL
	selNames map[objc.SEL]string
	objects  map[objc.ID]*object

	info        map[string]string
	numbers     map[string]int
	processName string
	pid         int

	app        objc.ID
	bundle     objc.ID
	procInfo   objc.ID
	policy     int
	launches   int
	classLooks map[string]int
	nameLooks  map[string]int
	calls      []Call
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithInfo sets a key in the main bundle's info dictionary.
func WithInfo(key, value string) Option {
	return func(r *Runtime) { r.info[key] = value }
}

// WithInfoNumber sets a key in the main bundle's info dictionary to an
// NSNumber.
func WithInfoNumber(key string, n int) Option {
	return func(r *Runtime) { r.numbers[key] = n }
}

// WithProcessName sets the name NSProcessInfo reports.
func WithProcessName(name string) Option {
	return func(r *Runtime) { r.processName = name }
}

// WithPID sets the process identifier NSProcessInfo reports.
func WithPID(pid int) Option {
	return func(r *Runtime) { r.pid = pid }
}

// WithoutClass removes a class from the class table.
func WithoutClass(name string) Option {
	return func(r *Runtime) {
		c, ok := r.classes[name]
		if !ok {
			return
		}
		delete(r.classes, name)
		delete(r.classOf, c)
	}
}

// New returns a runtime with an empty info dictionary, a process named
// "main" and an application whose activation policy is Prohibited, which is
// what AppKit reports for an unbundled command line process.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		next:        0x1000,
		classes:     make(map[string]objc.Class),
		classOf:     make(map[objc.Class]string),
		sels:        make(map[string]objc.SEL),
		selNames:    make(map[objc.SEL]string),
		objects:     make(map[objc.ID]*object),
		info:        make(map[string]string),
		numbers:     make(map[string]int),
		processName: "main",
		pid:         4242,
		policy:      2,
		classLooks:  make(map[string]int),
		nameLooks:   make(map[string]int),
	}
	for _, name := range knownClasses {
		c := objc.Class(r.alloc())
		r.classes[name] = c
		r.classOf[c] = name
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runtime) alloc() uintptr {
	r.next += 0x10
	return r.next
}

// GetClass implements objc.Runtime.
func (r *Runtime) GetClass(name string) objc.Class {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classLooks[name]++
	return r.classes[name]
}

// RegisterName implements objc.Runtime.
func (r *Runtime) RegisterName(name string) objc.SEL {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nameLooks[name]++
	if s, ok := r.sels[name]; ok {
		return s
	}
	s := objc.SEL(r.alloc())
	r.sels[name] = s
	r.selNames[s] = name
	return s
}

// Send implements objc.Runtime.
func (r *Runtime) Send(receiver objc.ID, sel objc.SEL, args ...any) objc.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dispatch(receiver, sel, args)
}

// SendBool implements objc.Runtime.
func (r *Runtime) SendBool(receiver objc.ID, sel objc.SEL, args ...any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dispatch(receiver, sel, args) != 0
}

// SendString implements objc.Runtime. Only -[NSString UTF8String] returns a
// C string here; anything else is an unrecognized selector.
func (r *Runtime) SendString(receiver objc.ID, sel objc.SEL, args ...any) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.selNames[sel]
	if !ok {
		panic(fmt.Sprintf("objctest: unregistered selector %#x", uintptr(sel)))
	}
	r.calls = append(r.calls, Call{Receiver: receiver, Selector: name, Args: args})
	if receiver == 0 {
		return ""
	}
	obj, ok := r.objects[receiver]
	if !ok {
		panic(fmt.Sprintf("objctest: message %q sent to unknown object %#x", name, uintptr(receiver)))
	}
	if obj.class != "NSString" || name != "UTF8String" {
		panic(fmt.Sprintf("objctest: -[%s %s]: unrecognized selector", obj.class, name))
	}
	if !obj.inited {
		return ""
	}
	// A C string ends at the first NUL.
	if i := strings.IndexByte(obj.str, 0); i >= 0 {
		return obj.str[:i]
	}
	return obj.str
}

func (r *Runtime) dispatch(receiver objc.ID, sel objc.SEL, args []any) objc.ID {
	name, ok := r.selNames[sel]
	if !ok {
		panic(fmt.Sprintf("objctest: unregistered selector %#x", uintptr(sel)))
	}
	r.calls = append(r.calls, Call{Receiver: receiver, Selector: name, Args: args})
	if receiver == 0 {
		return 0
	}

	if cls, ok := r.classOf[objc.Class(receiver)]; ok {
		return r.classMessage(cls, name, args)
	}
	obj, ok := r.objects[receiver]
	if !ok {
		panic(fmt.Sprintf("objctest: message %q sent to unknown object %#x", name, uintptr(receiver)))
	}
	return r.instanceMessage(receiver, obj, name, args)
}

func (r *Runtime) newObject(class string) objc.ID {
	id := objc.ID(r.alloc())
	r.objects[id] = &object{class: class, retains: 1}
	return id
}

func (r *Runtime) newString(s string) objc.ID {
	id := r.newObject("NSString")
	obj := r.objects[id]
	obj.inited = true
	obj.str = s
	return id
}

func (r *Runtime) classMessage(cls, sel string, args []any) objc.ID {
	switch {
	case sel == "alloc":
		id := r.newObject(cls)
		r.objects[id].owned = true
		return id
	case sel == "new" && cls == "NSAutoreleasePool":
		id := r.newObject(cls)
		r.objects[id].inited = true
		r.objects[id].owned = true
		return id
	case cls == "NSApplication" && sel == "sharedApplication":
		if r.app == 0 {
			r.app = r.newObject(cls)
		}
		return r.app
	case cls == "NSBundle" && sel == "mainBundle":
		if r.bundle == 0 {
			r.bundle = r.newObject(cls)
		}
		return r.bundle
	case cls == "NSProcessInfo" && sel == "processInfo":
		if r.procInfo == 0 {
			r.procInfo = r.newObject(cls)
		}
		return r.procInfo
	}
	panic(fmt.Sprintf("objctest: +[%s %s]: unrecognized selector", cls, sel))
}

func (r *Runtime) instanceMessage(id objc.ID, obj *object, sel string, args []any) objc.ID {
	switch sel {
	case "retain":
		obj.retains++
		return id
	case "release":
		obj.retains--
		return 0
	case "autorelease":
		return id
	case "isKindOfClass:":
		if len(args) != 1 {
			panic(fmt.Sprintf("objctest: %s: want 1 argument, got %d", sel, len(args)))
		}
		c, ok := args[0].(objc.Class)
		if !ok {
			panic(fmt.Sprintf("objctest: %s: argument is %T, want objc.Class", sel, args[0]))
		}
		if want := r.classOf[c]; want == obj.class || want == "NSObject" {
			return 1
		}
		return 0
	}

	switch obj.class {
	case "NSString":
		return r.stringMessage(id, obj, sel, args)
	case "NSAutoreleasePool":
		if sel == "drain" {
			obj.retains--
			return 0
		}
	case "NSBundle":
		switch sel {
		case "objectForInfoDictionaryKey:":
			key := r.stringArg(args, 0)
			if _, ok := r.numbers[key]; ok {
				num := r.newObject("NSNumber")
				r.objects[num].inited = true
				return num
			}
			v, ok := r.info[key]
			if !ok {
				return 0
			}
			return r.newString(v)
		case "bundleIdentifier":
			v, ok := r.info["CFBundleIdentifier"]
			if !ok {
				return 0
			}
			return r.newString(v)
		}
	case "NSProcessInfo":
		switch sel {
		case "processName":
			return r.newString(r.processName)
		case "processIdentifier":
			return objc.ID(r.pid)
		}
	case "NSApplication":
		switch sel {
		case "setActivationPolicy:":
			p := intArg(args, 0)
			if p < 0 || p > 2 {
				return 0
			}
			r.policy = p
			return 1
		case "activationPolicy":
			return objc.ID(r.policy)
		case "finishLaunching":
			r.launches++
			return 0
		}
	}
	panic(fmt.Sprintf("objctest: -[%s %s]: unrecognized selector", obj.class, sel))
}

func (r *Runtime) stringMessage(id objc.ID, obj *object, sel string, args []any) objc.ID {
	switch sel {
	case "initWithBytes:length:encoding:":
		if len(args) != 3 {
			panic(fmt.Sprintf("objctest: %s: want 3 arguments, got %d", sel, len(args)))
		}
		p, _ := args[0].(unsafe.Pointer)
		n, _ := args[1].(uint)
		enc, _ := args[2].(uint)
		var b []byte
		if n > 0 {
			b = unsafe.Slice((*byte)(p), n)
		}
		if enc != UTF8Encoding || !utf8.Valid(b) {
			obj.retains--
			return 0
		}
		obj.inited = true
		obj.str = string(b)
		return id
	case "UTF8String":
		panic("objctest: -[NSString UTF8String] returns a C string; use SendString")
	}
	panic(fmt.Sprintf("objctest: -[NSString %s]: unrecognized selector", sel))
}

func (r *Runtime) stringArg(args []any, i int) string {
	if i >= len(args) {
		panic("objctest: missing object argument")
	}
	id, ok := args[i].(objc.ID)
	if !ok {
		panic(fmt.Sprintf("objctest: argument %d is %T, want objc.ID", i, args[i]))
	}
	obj, ok := r.objects[id]
	if !ok || obj.class != "NSString" || !obj.inited {
		panic("objctest: argument is not a string")
	}
	return obj.str
}

func intArg(args []any, i int) int {
	if i >= len(args) {
		panic("objctest: missing integer argument")
	}
	switch v := args[i].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	}
	panic(fmt.Sprintf("objctest: argument %d is %T, want an integer", i, args[i]))
}

// Policy returns the application's current activation policy.
func (r *Runtime) Policy() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.policy
}

// Launches returns how many times finishLaunching was sent.
func (r *Runtime) Launches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.launches
}

// Calls returns the selectors sent, in order.
func (r *Runtime) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Selectors returns the selector names sent, in order.
func (r *Runtime) Selectors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Selector
	}
	return out
}

// ClassLookups returns how many times GetClass was asked for name.
func (r *Runtime) ClassLookups(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.classLooks[name]
}

// NameLookups returns how many times RegisterName was asked for name.
func (r *Runtime) NameLookups(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nameLooks[name]
}

// RetainCount returns the retain count of id, or -1 if id is unknown.
func (r *Runtime) RetainCount(id objc.ID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	obj, ok := r.objects[id]
	if !ok {
		return -1
	}
	return obj.retains
}

// Live returns the number of objects of class created with alloc or new
// that still have a positive retain count.
func (r *Runtime) Live(class string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, obj := range r.objects {
		if obj.owned && obj.class == class && obj.retains > 0 {
			n++
		}
	}
	return n
}
