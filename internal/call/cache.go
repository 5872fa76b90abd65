package call

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/sig"
)

// MethodDesc is a resolved method identifier plus its parsed signature,
// cached per (class, name, descriptor) at first use (spec §3).
type MethodDesc struct {
	ID     capi.MethodID
	Sig    sig.MethodSignature
	Static bool
}

// FieldDesc is a resolved field identifier plus its parsed type.
type FieldDesc struct {
	ID     capi.FieldID
	Field  sig.FieldSignature
	Static bool
}

type memberKey struct {
	class, name, descriptor string
	static                  bool
}

// MemberCache resolves and caches MethodDesc/FieldDesc values for one
// class hierarchy, collapsing concurrent first-time lookups for the same
// member via singleflight (spec §5: "first writer wins, later writers
// discard").
type MemberCache struct {
	group   singleflight.Group
	methods sync.Map // memberKey -> MethodDesc
	fields  sync.Map // memberKey -> FieldDesc
}

// ResolveMethod resolves (or returns the cached) method id for clazz.
func (c *MemberCache) ResolveMethod(env *jnienv.Env, clazz capi.Ref, className, name, descriptor string, static bool) (MethodDesc, error) {
	key := memberKey{class: className, name: name, descriptor: descriptor, static: static}
	if v, ok := c.methods.Load(key); ok {
		return v.(MethodDesc), nil
	}

	v, err, _ := c.group.Do(cacheKeyString("m", key), func() (any, error) {
		if v, ok := c.methods.Load(key); ok {
			return v.(MethodDesc), nil
		}
		parsed, perr := sig.ParseMethodDescriptor(descriptor)
		if perr != nil {
			return MethodDesc{}, perr
		}
		var id capi.MethodID
		var err error
		if static {
			id, err = env.GetStaticMethodID(clazz, name, descriptor)
		} else {
			id, err = env.GetMethodID(clazz, name, descriptor)
		}
		if err != nil {
			return MethodDesc{}, err
		}
		if id == 0 {
			return MethodDesc{}, &MethodNotFoundError{Class: className, Name: name, Sig: descriptor}
		}
		desc := MethodDesc{ID: id, Sig: parsed, Static: static}
		c.methods.Store(key, desc)
		return desc, nil
	})
	if err != nil {
		return MethodDesc{}, err
	}
	return v.(MethodDesc), nil
}

// ResolveField resolves (or returns the cached) field id for clazz.
func (c *MemberCache) ResolveField(env *jnienv.Env, clazz capi.Ref, className, name, descriptor string, static bool) (FieldDesc, error) {
	key := memberKey{class: className, name: name, descriptor: descriptor, static: static}
	if v, ok := c.fields.Load(key); ok {
		return v.(FieldDesc), nil
	}

	v, err, _ := c.group.Do(cacheKeyString("f", key), func() (any, error) {
		if v, ok := c.fields.Load(key); ok {
			return v.(FieldDesc), nil
		}
		parsed, perr := sig.ParseFieldDescriptor(descriptor)
		if perr != nil {
			return FieldDesc{}, perr
		}
		var id capi.FieldID
		var err error
		if static {
			id, err = env.GetStaticFieldID(clazz, name, descriptor)
		} else {
			id, err = env.GetFieldID(clazz, name, descriptor)
		}
		if err != nil {
			return FieldDesc{}, err
		}
		if id == 0 {
			return FieldDesc{}, &FieldNotFoundError{Class: className, Name: name, Sig: descriptor}
		}
		desc := FieldDesc{ID: id, Field: parsed, Static: static}
		c.fields.Store(key, desc)
		return desc, nil
	})
	if err != nil {
		return FieldDesc{}, err
	}
	return v.(FieldDesc), nil
}

func cacheKeyString(prefix string, k memberKey) string {
	s := prefix + "|" + k.class + "|" + k.name + "|" + k.descriptor
	if k.static {
		s += "|static"
	}
	return s
}

// DefaultMemberCache is the process-wide cache shared by generated
// bindings' jni_init thunks, mirroring refs.DefaultClassCache.
var DefaultMemberCache = &MemberCache{}
