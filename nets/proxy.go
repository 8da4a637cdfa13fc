package nets

import (
	"context"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/tbas/configs"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

var _ configs.Configurable = ProxyAddr("")

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	layers := []func() ProxyAddr{
		func() ProxyAddr {
			return configs.Lookup[ProxyAddr](loader)
		},
	}
	for _, name := range []string{"ALL_PROXY", "all_proxy", "SOCKS_PROXY", "socks_proxy"} {
		layers = append(layers, func() ProxyAddr {
			return ProxyAddr(os.Getenv(name))
		})
	}
	return vars.FirstNonZeroFunc(layers...)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := proxyDialer.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}), nil
	})
}
