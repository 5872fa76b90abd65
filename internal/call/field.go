package call

import (
	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
)

// GetField reads a checked instance field.
func GetField(env *jnienv.Env, recv capi.Ref, desc FieldDesc) (capi.Value, error) {
	if recv == 0 {
		return capi.Value{}, jnienv.ErrNullPtr
	}
	return capi.GetField(env.Raw(), desc.Field.Type.Kind, recv, desc.ID), nil
}

// SetField writes a checked instance field, after validating v's kind
// against the resolved field type.
func SetField(env *jnienv.Env, recv capi.Ref, desc FieldDesc, v Arg) error {
	if recv == 0 {
		return jnienv.ErrNullPtr
	}
	if v.Kind != desc.Field.Type.Kind {
		return &InvalidArgListError{Reason: "field value kind mismatch"}
	}
	capi.SetField(env.Raw(), desc.Field.Type.Kind, recv, desc.ID, v.Value)
	return nil
}

// GetStaticField reads a checked static field.
func GetStaticField(env *jnienv.Env, clazz capi.Ref, desc FieldDesc) (capi.Value, error) {
	return capi.GetStaticField(env.Raw(), desc.Field.Type.Kind, clazz, desc.ID), nil
}

// SetStaticField writes a checked static field.
func SetStaticField(env *jnienv.Env, clazz capi.Ref, desc FieldDesc, v Arg) error {
	if v.Kind != desc.Field.Type.Kind {
		return &InvalidArgListError{Reason: "field value kind mismatch"}
	}
	capi.SetStaticField(env.Raw(), desc.Field.Type.Kind, clazz, desc.ID, v.Value)
	return nil
}
