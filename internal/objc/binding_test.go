package objc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/appname/internal/objc"
	"github.com/mj1618/appname/internal/objc/objctest"
)

func TestLookupClass_Memoized(t *testing.T) {
	rt := objctest.New()
	b := objc.NewBinding(rt)

	c1, err := b.LookupClass("NSString")
	require.NoError(t, err)
	c2, err := b.LookupClass("NSString")
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, c1, b.Class("NSString"))
	assert.Equal(t, 1, rt.ClassLookups("NSString"))
}

func TestLookupClass_NotFound(t *testing.T) {
	rt := objctest.New(objctest.WithoutClass("NSBundle"))
	b := objc.NewBinding(rt)

	_, err := b.LookupClass("NSBundle")
	assert.ErrorIs(t, err, objc.ErrClassNotFound)

	// absences are not cached; a later registration would be seen
	_, _ = b.LookupClass("NSBundle")
	assert.Equal(t, 2, rt.ClassLookups("NSBundle"))
}

func TestClass_PanicsWhenMissing(t *testing.T) {
	b := objc.NewBinding(objctest.New(objctest.WithoutClass("NSApplication")))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, objc.ErrClassNotFound)
	}()
	b.Class("NSApplication")
}

func TestInvalidNames(t *testing.T) {
	rt := objctest.New()
	b := objc.NewBinding(rt)

	for _, name := range []string{"", "NS\x00String"} {
		_, err := b.LookupClass(name)
		assert.ErrorIs(t, err, objc.ErrInvalidName, "%q", name)
		assert.Panics(t, func() { b.Selector(name) }, "%q", name)
	}
	assert.Zero(t, rt.ClassLookups(""))
}

func TestSelector_SameNameSameHandle(t *testing.T) {
	rt := objctest.New()
	b := objc.NewBinding(rt)

	s1 := b.Selector("processName")
	s2 := b.Selector("processName")
	assert.Equal(t, s1, s2)
	assert.NotEqual(t, s1, b.Selector("processInfo"))
	assert.Equal(t, 1, rt.NameLookups("processName"))

	// a fresh binding over the same runtime resolves the same entity
	assert.Equal(t, s1, objc.NewBinding(rt).Selector("processName"))
}

func TestSend_NilReceiver(t *testing.T) {
	rt := objctest.New()
	b := objc.NewBinding(rt)

	r, ok := b.Send(0, b.Selector("UTF8String"))
	assert.False(t, ok)
	assert.Zero(t, r)
	assert.False(t, b.SendBool(0, b.Selector("setActivationPolicy:"), 0))
	assert.Empty(t, rt.Calls(), "nil receivers never reach the runtime")
}

func TestSend_NilResult(t *testing.T) {
	b := objc.NewBinding(objctest.New())
	bundle, ok := b.Send(b.Class("NSBundle").ID(), b.Selector("mainBundle"))
	require.True(t, ok)

	_, ok = b.Send(bundle, b.Selector("bundleIdentifier"))
	assert.False(t, ok)
}

func TestSendString(t *testing.T) {
	rt := objctest.New()
	b := objc.NewBinding(rt)

	assert.Equal(t, "", b.SendString(0, b.Selector("UTF8String")))
	assert.Empty(t, rt.Calls(), "nil receivers never reach the runtime")

	info, ok := b.Send(b.Class("NSProcessInfo").ID(), b.Selector("processInfo"))
	require.True(t, ok)
	name, ok := b.Send(info, b.Selector("processName"))
	require.True(t, ok)
	assert.Equal(t, "main", b.SendString(name, b.Selector("UTF8String")))
}

func TestSendString_PointerResultIsRejected(t *testing.T) {
	b := objc.NewBinding(objctest.New())
	info, _ := b.Send(b.Class("NSProcessInfo").ID(), b.Selector("processInfo"))
	name, _ := b.Send(info, b.Selector("processName"))
	assert.Panics(t, func() { b.Send(name, b.Selector("UTF8String")) })
}
