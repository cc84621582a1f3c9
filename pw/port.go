package pw

/*
#include <stdlib.h>
#include <pipewire/pipewire.h>

extern void goPortEventInfo(void *data, const struct pw_port_info *info);
extern void goPortEventParam(void *data, int seq, uint32_t id, uint32_t index,
		uint32_t next, const struct spa_pod *param);

// The event table is heap allocated so its address stays stable for the
// registration's lifetime. Only configured slots are set; the native side
// skips unset ones.
static struct pw_port_events *pwgo_port_events_new(int with_info, int with_param) {
	struct pw_port_events *ev = calloc(1, sizeof(*ev));
	if (ev == NULL)
		return NULL;
	ev->version = PW_VERSION_PORT_EVENTS;
	if (with_info)
		ev->info = goPortEventInfo;
	if (with_param)
		ev->param = goPortEventParam;
	return ev;
}

static int pwgo_port_add_listener(struct pw_port *port, struct spa_hook *hook,
		const struct pw_port_events *events, void *data) {
	return pw_port_add_listener(port, hook, events, data);
}

static int pwgo_port_subscribe_params(struct pw_port *port, uint32_t *ids, uint32_t n_ids) {
	return pw_port_subscribe_params(port, ids, n_ids);
}

static int pwgo_port_enum_params(struct pw_port *port, int seq, uint32_t id,
		uint32_t start, uint32_t num) {
	return pw_port_enum_params(port, seq, id, start, num, NULL);
}

static void pwgo_hook_remove(struct spa_hook *hook) {
	spa_hook_remove(hook);
}
*/
import "C"
import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ccoveille/go-safecast"
)

// InfoChangedHandler receives a borrowed view of the port's published
// state. The view must not be retained beyond the callback.
type InfoChangedHandler func(info *PortInfoRef)

// ParamChangedHandler receives one parameter notification. seq correlates
// the event with an EnumParams request; pod is nil when the event carries
// no payload.
type ParamChangedHandler func(seq int32, id ParamType, index, next uint32, pod *Pod)

// Port is the typed facade over a port proxy
type Port struct {
	proxy *Proxy
}

// PortFromProxy wraps a proxy the caller asserts is a port
// (TypeInterfacePort).
func PortFromProxy(proxy *Proxy) *Port {
	if proxy == nil {
		panic("pw: port requires a non-nil proxy")
	}
	return &Port{proxy: proxy}
}

// Proxy returns the underlying proxy
func (p *Port) Proxy() *Proxy {
	return p.proxy
}

func (p *Port) asRaw() *C.struct_pw_port {
	return (*C.struct_pw_port)(p.proxy.AsRaw())
}

// SubscribeParams requests that future changes to the given parameter
// kinds be delivered as param events to registered listeners. Must be
// called on the loop thread. An id list too long for the native count
// field is a fatal precondition failure.
func (p *Port) SubscribeParams(ids []ParamType) {
	assertLoopThread("SubscribeParams")

	n, err := safecast.ToUint32(len(ids))
	if err != nil {
		panic("pw: SubscribeParams id list does not fit the native count field")
	}

	var idsPtr *C.uint32_t
	if n > 0 {
		cids := make([]C.uint32_t, n)
		for i, id := range ids {
			cids[i] = C.uint32_t(id)
		}
		pinner := &runtime.Pinner{}
		defer pinner.Unpin()
		pinner.Pin(&cids[0])
		idsPtr = &cids[0]
	}

	rc := C.pwgo_port_subscribe_params(p.asRaw(), idsPtr, C.uint32_t(n))
	logger.Debug("pw_port_subscribe_params", "n_ids", n, "rc", int(rc))
}

// EnumParams requests enumeration of up to num parameters of kind id
// starting at index start. Use IDAny to enumerate every kind and
// math.MaxUint32 for num to retrieve all. Results arrive asynchronously
// as param events tagged with seq. Must be called on the loop thread.
func (p *Port) EnumParams(seq int32, id ParamType, start, num uint32) {
	assertLoopThread("EnumParams")

	rc := C.pwgo_port_enum_params(p.asRaw(), C.int(seq), C.uint32_t(id),
		C.uint32_t(start), C.uint32_t(num))
	logger.Debug("pw_port_enum_params", "seq", seq, "id", uint32(id), "rc", int(rc))
}

// AddListenerLocal starts building a listener registration for this port.
// Attach callbacks with Info and Param, then call Register.
func (p *Port) AddListenerLocal() *PortListenerBuilder {
	return &PortListenerBuilder{port: p}
}

// PortListenerBuilder accumulates callbacks for one atomic listener
// registration
type PortListenerBuilder struct {
	port  *Port
	info  InfoChangedHandler
	param ParamChangedHandler
}

// Info attaches the info-changed callback. Calling it again replaces the
// previous one.
func (b *PortListenerBuilder) Info(fn InfoChangedHandler) *PortListenerBuilder {
	b.info = fn
	return b
}

// Param attaches the param-changed callback. Calling it again replaces
// the previous one.
func (b *PortListenerBuilder) Param(fn ParamChangedHandler) *PortListenerBuilder {
	b.param = fn
	return b
}

// Register performs the registration with whichever callbacks were
// configured and returns the owned listener. The builder must not be
// reused afterwards. Must be called on the loop thread.
func (b *PortListenerBuilder) Register() *PortListener {
	assertLoopThread("Register")

	ctx := newPortListenerContext(b.info, b.param)

	events := C.pwgo_port_events_new(cbool(ctx.hasInfo()), cbool(ctx.hasParam()))
	if events == nil {
		panic("pw: out of memory allocating port event table")
	}

	hook := (*C.struct_spa_hook)(C.calloc(1, C.sizeof_struct_spa_hook))
	if hook == nil {
		C.free(unsafe.Pointer(events))
		panic("pw: out of memory allocating listener hook")
	}

	rc := C.pwgo_port_add_listener(b.port.asRaw(), hook, events, unsafe.Pointer(ctx))
	logger.Debug("pw_port_add_listener", "port", b.port.proxy.ID(),
		"info", ctx.hasInfo(), "param", ctx.hasParam(), "rc", int(rc))

	l := &PortListener{
		ctx: ctx,
		remove: func() {
			// Unhook first: a hooked registration must never see freed memory.
			C.pwgo_hook_remove(hook)
			C.free(unsafe.Pointer(hook))
			C.free(unsafe.Pointer(events))
		},
	}
	runtime.SetFinalizer(l, (*PortListener).Close)

	return l
}

// PortListener is an owned listener registration. Closing it removes the
// hook from the native notification list, then releases the event table,
// the hook and the closures. It must be closed before the port's proxy
// goes away.
type PortListener struct {
	remove    func()
	ctx       *portListenerContext
	closeOnce sync.Once
}

// Close unregisters the listener. Idempotent.
func (l *PortListener) Close() {
	l.closeOnce.Do(func() {
		l.remove()
		l.ctx.drop()
		runtime.SetFinalizer(l, nil)
	})
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
