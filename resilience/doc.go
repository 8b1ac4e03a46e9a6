// Package resilience provides a call-with-fallback guard.
//
// A Guard runs a primary operation and, when it fails, runs a fallback in its
// place so the caller receives a degraded value instead of the failure:
//
//	g := resilience.NewGuard[Employee](resilience.DefaultGuardConfig("employee"))
//	emp, err := g.Execute(
//	    func() (Employee, error) { return source.Fetch(ctx, name) },
//	    func() (Employee, error) { return cached(name) },
//	)
//
// err is non-nil only when the fallback failed, and is then exactly the
// fallback's error. The guard never retries and keeps no state between calls.
package resilience
