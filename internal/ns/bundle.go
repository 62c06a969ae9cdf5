package ns

import "github.com/mj1618/appname/internal/objc"

// Bundle is an NSBundle handle.
type Bundle struct {
	Object
}

// MainBundle returns the bundle of the running executable. Unbundled
// executables still get one, with an empty info dictionary.
func MainBundle(b *objc.Binding) Bundle {
	cls := b.Class("NSBundle")
	id, _ := b.Send(cls.ID(), b.Selector("mainBundle"))
	return Bundle{wrap(b, id)}
}

// ObjectForInfoDictionaryKey looks key up in the bundle's Info.plist.
// ok is false when the key is absent, which is a normal outcome, and when
// the value is not a string; a plist may hold a number under a key that
// is normally a string.
func (bd Bundle) ObjectForInfoDictionaryKey(key string) (String, bool) {
	k, ok := NewStringFromGo(bd.b, key)
	if !ok {
		return String{}, false
	}
	defer k.Release()

	id, ok := bd.b.Send(bd.id, bd.b.Selector("objectForInfoDictionaryKey:"), k.ID())
	if !ok {
		return String{}, false
	}
	v := wrap(bd.b, id)
	if !v.IsKindOfClass(bd.b.Class("NSString")) {
		return String{}, false
	}
	return String{v}, true
}

// BundleIdentifier returns CFBundleIdentifier, if the bundle has one.
func (bd Bundle) BundleIdentifier() (String, bool) {
	id, ok := bd.b.Send(bd.id, bd.b.Selector("bundleIdentifier"))
	if !ok {
		return String{}, false
	}
	return String{wrap(bd.b, id)}, true
}
