package rate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const numWorkers = 4
const perProviderTimeout = 2 * time.Minute

// ErrNothingRefreshed is returned when no configured provider could be refreshed.
var ErrNothingRefreshed = errors.New("no provider was refreshed")

// Refresher is implemented by providers backed by an upstream source.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type refreshResult struct {
	Token string
	Err   error
}

// RefreshProviders pulls fresh data for every token in parallel. Failures of single
// providers are logged; only a run where every provider failed is an error.
func RefreshProviders(ctx context.Context, execID string, providers ProviderSelector, tokens []string) (int, error) {
	if len(tokens) == 0 {
		logrus.Infof("Nothing to refresh this time; execID: %s", execID)
		return 0, nil
	}

	// STEP 1: queue every configured token once
	workQueue := make(chan string, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		workQueue <- token
	}
	close(workQueue)

	// STEP 2: workers refresh providers and report into resultsCh
	resultsCh := make(chan refreshResult, len(seen))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, providers, resultsCh)
		}(i)
	}
	wg.Wait()
	close(resultsCh)

	// STEP 3: summarize
	refreshed, failed := 0, 0
	for res := range resultsCh {
		if res.Err != nil {
			failed++
			continue
		}
		refreshed++
	}

	logrus.Infof("%d providers refreshed, %d failed; execID %s", refreshed, failed, execID)
	if refreshed == 0 && failed > 0 {
		return 0, fmt.Errorf("%w: %d failures", ErrNothingRefreshed, failed)
	}
	return refreshed, nil
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan string, providers ProviderSelector, resultsCh chan<- refreshResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case token, ok := <-workQueue:
			if !ok {
				return
			}
			if res, ok := refreshOne(ctx, workerID, token, providers); ok {
				resultsCh <- res
			}
		}
	}
}

// refreshOne returns false for providers without an upstream source.
func refreshOne(ctx context.Context, workerID int, token string, providers ProviderSelector) (refreshResult, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, perProviderTimeout)
	defer cancel()

	p, err := providers.Select(reqCtx, token)
	if err != nil {
		logrus.Warnf("Provider '%s' wasn't refreshed by Worker %d: %s", token, workerID, err)
		return refreshResult{Token: token, Err: err}, true
	}
	refresher, ok := p.(Refresher)
	if !ok {
		logrus.Debugf("Provider '%s' has no source to refresh", token)
		return refreshResult{}, false
	}
	if err = refresher.Refresh(reqCtx); err != nil {
		logrus.Warnf("Provider '%s' wasn't refreshed by Worker %d as source returned error: %s", token, workerID, err)
		return refreshResult{Token: token, Err: err}, true
	}
	return refreshResult{Token: token}, true
}
