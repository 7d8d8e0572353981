package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"kakeibo/logging"
	"kakeibo/models"
)

// KV 永続化ストアのインターフェース
// Get は未保存のキーに対して空文字列を返す
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Ledger 家計簿の状態ホルダー
// 支出・予算・カテゴリの3コレクションをメモリ上に保持し、
// 変更のたびに該当コレクションを非同期でストアへ書き出す。
// 各キーについて未書き込みのスナップショットは常に最新の1件だけを保持し、
// 単一のワーカーがそれを書き出すため、古いスナップショットが
// 新しいスナップショットを後から上書きすることはない。
type Ledger struct {
	mu         sync.RWMutex
	kv         KV
	expenses   []models.Expense
	budgets    []models.Budget
	categories []string
	loaded     bool
	lastID     int64

	pmu     sync.Mutex
	pending map[string]string
	kick    chan struct{}
	quit    chan struct{}
	done    chan struct{}
}

// NewLedger Ledger を作成し、永続化ワーカーを起動する
func NewLedger(kv KV) *Ledger {
	l := &Ledger{
		kv:      kv,
		pending: make(map[string]string),
		kick:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go l.runPersister()
	return l
}

// runPersister 書き込み待ちのスナップショットをストアへ反映する
// 失敗はログに残すだけで呼び出し元へは伝えない（メモリ上の状態が正）
func (l *Ledger) runPersister() {
	defer close(l.done)
	for {
		select {
		case <-l.kick:
			l.flushPending()
		case <-l.quit:
			l.flushPending()
			return
		}
	}
}

// flushPending 書き込み待ちが空になるまで1件ずつ書き出す
func (l *Ledger) flushPending() {
	for {
		l.pmu.Lock()
		var key, value string
		for k, v := range l.pending {
			key, value = k, v
			break
		}
		if key == "" {
			l.pmu.Unlock()
			return
		}
		delete(l.pending, key)
		l.pmu.Unlock()

		if err := l.kv.Set(key, value); err != nil {
			logging.Logger.WithField("key", key).WithError(err).Error("永続化に失敗しました")
		}
	}
}

// Close 未処理の書き込みを流し切ってワーカーを停止する
func (l *Ledger) Close() {
	close(l.quit)
	<-l.done
}

// Load 起動時に一度だけストアから3コレクションを読み込む
// 壊れた JSON や読み込み失敗は空コレクション扱い（カテゴリは初期リスト）
func (l *Ledger) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return
	}

	if raw := l.loadRaw(models.KeyExpenses); raw != "" {
		if err := json.Unmarshal([]byte(raw), &l.expenses); err != nil {
			logging.Logger.WithError(err).Warn("支出データの復元に失敗したため空の状態で開始します")
			l.expenses = nil
		}
	}
	if raw := l.loadRaw(models.KeyBudgets); raw != "" {
		if err := json.Unmarshal([]byte(raw), &l.budgets); err != nil {
			logging.Logger.WithError(err).Warn("予算データの復元に失敗したため空の状態で開始します")
			l.budgets = nil
		}
	}
	if raw := l.loadRaw(models.KeyCategories); raw != "" {
		if err := json.Unmarshal([]byte(raw), &l.categories); err != nil {
			logging.Logger.WithError(err).Warn("カテゴリデータの復元に失敗したため初期リストで開始します")
			l.categories = nil
		}
	}
	if len(l.categories) == 0 {
		l.categories = models.DefaultCategories()
	}

	// 保存順に依存しないよう日付降順を保証する（同日内は保存順を維持）
	sort.SliceStable(l.expenses, func(i, j int) bool {
		return l.expenses[i].Date > l.expenses[j].Date
	})

	for _, e := range l.expenses {
		if e.ID > l.lastID {
			l.lastID = e.ID
		}
	}

	l.loaded = true
}

func (l *Ledger) loadRaw(key string) string {
	raw, err := l.kv.Get(key)
	if err != nil {
		logging.Logger.WithField("key", key).WithError(err).Warn("ストアの読み込みに失敗しました")
		return ""
	}
	return raw
}

// Loaded 初回読み込みが完了しているか
func (l *Ledger) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Expenses 支出一覧のコピーを返す（日付降順）
func (l *Ledger) Expenses() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Budgets 予算一覧のコピーを返す
func (l *Ledger) Budgets() []models.Budget {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Budget, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// Categories カテゴリ一覧のコピーを返す
func (l *Ledger) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}

// HasCategory カテゴリが現在のカテゴリ集合に含まれるか
func (l *Ledger) HasCategory(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasCategoryLocked(name)
}

func (l *Ledger) hasCategoryLocked(name string) bool {
	for _, c := range l.categories {
		if c == name {
			return true
		}
	}
	return false
}

// FindExpense ID で支出を探す
func (l *Ledger) FindExpense(id int64) (models.Expense, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// AddExpense 支出を追加し、採番済みのレコードを返す
// 一覧は日付降順を維持する。同じ日付の場合は後から追加したものが前に来る
func (l *Ledger) AddExpense(e models.Expense) models.Expense {
	l.mu.Lock()
	e.ID = l.nextIDLocked()

	idx := sort.Search(len(l.expenses), func(i int) bool {
		return l.expenses[i].Date <= e.Date
	})
	l.expenses = append(l.expenses, models.Expense{})
	copy(l.expenses[idx+1:], l.expenses[idx:])
	l.expenses[idx] = e

	l.enqueue(models.KeyExpenses, l.marshalExpensesLocked())
	l.mu.Unlock()
	return e
}

// nextIDLocked ミリ秒タイムスタンプで採番する
// 同一ミリ秒内の連続追加でも重複しないよう単調増加を保証する
func (l *Ledger) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// UpdateExpense ID が一致するレコードを置き換える（ID は維持）
// 見つからなければ何もせず false を返す
func (l *Ledger) UpdateExpense(e models.Expense) bool {
	l.mu.Lock()
	found := false
	for i := range l.expenses {
		if l.expenses[i].ID == e.ID {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		l.mu.Unlock()
		return false
	}

	// 日付が変わっても降順を保つよう挿入し直す
	idx := sort.Search(len(l.expenses), func(i int) bool {
		return l.expenses[i].Date <= e.Date
	})
	l.expenses = append(l.expenses, models.Expense{})
	copy(l.expenses[idx+1:], l.expenses[idx:])
	l.expenses[idx] = e

	l.enqueue(models.KeyExpenses, l.marshalExpensesLocked())
	l.mu.Unlock()
	return true
}

// DeleteExpense ID で支出を削除する。見つからなければ何もしない
func (l *Ledger) DeleteExpense(id int64) bool {
	l.mu.Lock()
	found := false
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		l.mu.Unlock()
		return false
	}
	l.enqueue(models.KeyExpenses, l.marshalExpensesLocked())
	l.mu.Unlock()
	return true
}

// UpsertBudget 同一カテゴリの予算があれば置き換え、無ければ追加する
func (l *Ledger) UpsertBudget(b models.Budget) {
	l.mu.Lock()
	replaced := false
	for i := range l.budgets {
		if l.budgets[i].Category == b.Category {
			l.budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		l.budgets = append(l.budgets, b)
	}

	payload, err := json.Marshal(l.budgets)
	if err != nil {
		l.mu.Unlock()
		logging.Logger.WithError(err).Error("予算データのシリアライズに失敗しました")
		return
	}
	l.enqueue(models.KeyBudgets, string(payload))
	l.mu.Unlock()
}

// AddCategory カテゴリを末尾に追加する。空文字と重複はエラー
func (l *Ledger) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("カテゴリ名を入力してください")
	}

	l.mu.Lock()
	if l.hasCategoryLocked(name) {
		l.mu.Unlock()
		return fmt.Errorf("カテゴリ「%s」は既に存在します", name)
	}
	l.categories = append(l.categories, name)

	payload, err := json.Marshal(l.categories)
	if err != nil {
		l.mu.Unlock()
		logging.Logger.WithError(err).Error("カテゴリデータのシリアライズに失敗しました")
		return nil
	}
	l.enqueue(models.KeyCategories, string(payload))
	l.mu.Unlock()
	return nil
}

// RemoveCategory カテゴリを集合から外す。見つからなければ何もしない
// 同名カテゴリを参照している既存の支出・予算には手を付けない
func (l *Ledger) RemoveCategory(name string) bool {
	l.mu.Lock()
	found := false
	for i, c := range l.categories {
		if c == name {
			l.categories = append(l.categories[:i], l.categories[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		l.mu.Unlock()
		return false
	}

	payload, err := json.Marshal(l.categories)
	if err != nil {
		l.mu.Unlock()
		logging.Logger.WithError(err).Error("カテゴリデータのシリアライズに失敗しました")
		return true
	}
	l.enqueue(models.KeyCategories, string(payload))
	l.mu.Unlock()
	return true
}

func (l *Ledger) marshalExpensesLocked() string {
	payload, err := json.Marshal(l.expenses)
	if err != nil {
		logging.Logger.WithError(err).Error("支出データのシリアライズに失敗しました")
		return ""
	}
	return string(payload)
}

// enqueue 最新スナップショットを書き込み待ちへ登録する。呼び出し元は完了を待たない
// l.mu を保持したまま呼ぶこと。未書き込みの同一キーは新しい内容で置き換えるため、
// ストアが遅くても呼び出し元がブロックすることはない
func (l *Ledger) enqueue(key, value string) {
	if value == "" {
		return
	}
	l.pmu.Lock()
	l.pending[key] = value
	l.pmu.Unlock()

	select {
	case l.kick <- struct{}{}:
	default:
	}
}
