// Package safe_close 提供服务组件的统一关闭信号
package safe_close

import (
	"sync"
)

// SafeClose 聚合多个子任务的收尾过程
// Attach 注册的任务在收到关闭信号后执行清理并调用 done
type SafeClose struct {
	mu        sync.Mutex
	once      sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
	firstErr  error
	doneCh    chan struct{}
	doneOnce  sync.Once
	attachCnt int
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Attach 注册一个子任务
// f 必须在退出前调用 done，并监听 closeSignal 以便及时收尾
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.mu.Lock()
	s.attachCnt++
	s.mu.Unlock()

	s.wg.Add(1)
	done := func() { s.wg.Done() }
	go f(done, s.closeCh)
}

// SendCloseSignal 广播关闭信号，err 记录首个触发原因
func (s *SafeClose) SendCloseSignal(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.firstErr = err
		s.mu.Unlock()
		close(s.closeCh)
	})
}

// WaitClosed 阻塞等待所有子任务收尾完毕，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	<-s.closeCh
	s.wg.Wait()
	s.doneOnce.Do(func() { close(s.doneCh) })

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstErr
}
